package models

// Collection identifies one of the record collections managed by the program.
type Collection string

const (
	CollectionFarmers          Collection = "farmers"
	CollectionFarmBaselines    Collection = "farm_baselines"
	CollectionCoffeeModels     Collection = "coffee_models"
	CollectionAnnualActivities Collection = "annual_activities"
	CollectionTrainingRecords  Collection = "training_records"
	CollectionFinancialRecords Collection = "financial_records"
)

// Collections is the closed, ordered set of collections. Export, restore, the
// records API and the stores all iterate or validate against this slice; it
// is the single source of truth for which collections exist.
var Collections = []Collection{
	CollectionFarmers,
	CollectionFarmBaselines,
	CollectionCoffeeModels,
	CollectionAnnualActivities,
	CollectionTrainingRecords,
	CollectionFinancialRecords,
}

// KnownCollection reports whether name is part of the managed set.
func KnownCollection(name string) bool {
	for _, c := range Collections {
		if string(c) == name {
			return true
		}
	}
	return false
}

// Record is one row of a collection as exchanged with a store backend.
// Field sets vary per collection and per backend, so rows stay untyped here;
// the typed models in this package are used for API binding only.
type Record map[string]any

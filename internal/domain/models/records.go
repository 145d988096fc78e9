package models

// BindTarget returns a fresh typed row for a collection, used by the HTTP
// layer to validate incoming create payloads against the collection's
// binding tags. Unknown collections return nil.
func BindTarget(collection Collection) any {
	switch collection {
	case CollectionFarmers:
		return &Farmer{}
	case CollectionFarmBaselines:
		return &FarmBaseline{}
	case CollectionCoffeeModels:
		return &CoffeeModel{}
	case CollectionAnnualActivities:
		return &AnnualActivity{}
	case CollectionTrainingRecords:
		return &TrainingRecord{}
	case CollectionFinancialRecords:
		return &FinancialRecord{}
	default:
		return nil
	}
}

// Farmer is one registered program participant.
type Farmer struct {
	ID         string `json:"id,omitempty" bson:"id,omitempty"`
	FarmerCode string `json:"farmer_code" bson:"farmer_code" binding:"required"`
	FullName   string `json:"full_name" bson:"full_name" binding:"required"`
	Gender     string `json:"gender,omitempty" bson:"gender,omitempty"`
	BirthYear  int    `json:"birth_year,omitempty" bson:"birth_year,omitempty"`
	Phone      string `json:"phone,omitempty" bson:"phone,omitempty"`
	Village    string `json:"village,omitempty" bson:"village,omitempty"`
	Commune    string `json:"commune,omitempty" bson:"commune,omitempty"`
	District   string `json:"district,omitempty" bson:"district,omitempty"`
	Province   string `json:"province,omitempty" bson:"province,omitempty"`
}

// FarmBaseline records the initial state of a farm, used as the comparison
// point for later monitoring rounds.
type FarmBaseline struct {
	ID              string  `json:"id,omitempty" bson:"id,omitempty"`
	FarmerID        string  `json:"farmer_id" bson:"farmer_id" binding:"required"`
	SurveyYear      int     `json:"survey_year" bson:"survey_year" binding:"required"`
	AreaHa          float64 `json:"area_ha,omitempty" bson:"area_ha,omitempty"`
	CoffeeVariety   string  `json:"coffee_variety,omitempty" bson:"coffee_variety,omitempty"`
	TreeAgeYears    int     `json:"tree_age_years,omitempty" bson:"tree_age_years,omitempty"`
	TreesPerHa      int     `json:"trees_per_ha,omitempty" bson:"trees_per_ha,omitempty"`
	ShadeTreesPerHa int     `json:"shade_trees_per_ha,omitempty" bson:"shade_trees_per_ha,omitempty"`
	SoilPH          string  `json:"soil_ph,omitempty" bson:"soil_ph,omitempty"`
	IrrigationType  string  `json:"irrigation_type,omitempty" bson:"irrigation_type,omitempty"`
}

// CoffeeModel describes one of the climate-adapted growing models a farm can
// be enrolled in (intercropping layout, shade design, water regime).
type CoffeeModel struct {
	ID          string `json:"id,omitempty" bson:"id,omitempty"`
	ModelCode   string `json:"model_code" bson:"model_code" binding:"required"`
	Name        string `json:"name" bson:"name" binding:"required"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Intercrops  string `json:"intercrops,omitempty" bson:"intercrops,omitempty"`
	ShadeDesign string `json:"shade_design,omitempty" bson:"shade_design,omitempty"`
}

// AnnualActivity is one agricultural activity logged for a farm in a season:
// fertilization, pruning, pesticide application, irrigation, harvest.
type AnnualActivity struct {
	ID            string  `json:"id,omitempty" bson:"id,omitempty"`
	FarmerID      string  `json:"farmer_id" bson:"farmer_id" binding:"required"`
	Year          int     `json:"year" bson:"year" binding:"required"`
	ActivityType  string  `json:"activity_type" bson:"activity_type" binding:"required"`
	ActivityDate  string  `json:"activity_date,omitempty" bson:"activity_date,omitempty"`
	PesticideName string  `json:"pesticide_name,omitempty" bson:"pesticide_name,omitempty"`
	PHIDays       int     `json:"phi_days,omitempty" bson:"phi_days,omitempty"`
	DoseePerHa    float64 `json:"dose_per_ha,omitempty" bson:"dose_per_ha,omitempty"`
	Notes         string  `json:"notes,omitempty" bson:"notes,omitempty"`
}

// TrainingRecord logs attendance of a farmer at a program training session.
type TrainingRecord struct {
	ID           string `json:"id,omitempty" bson:"id,omitempty"`
	FarmerID     string `json:"farmer_id" bson:"farmer_id" binding:"required"`
	Topic        string `json:"topic" bson:"topic" binding:"required"`
	TrainingDate string `json:"training_date,omitempty" bson:"training_date,omitempty"`
	Trainer      string `json:"trainer,omitempty" bson:"trainer,omitempty"`
	Attended     bool   `json:"attended" bson:"attended"`
}

// FinancialRecord is one income or expense entry for a farm.
type FinancialRecord struct {
	ID        string  `json:"id,omitempty" bson:"id,omitempty"`
	FarmerID  string  `json:"farmer_id" bson:"farmer_id" binding:"required"`
	Year      int     `json:"year" bson:"year" binding:"required"`
	Kind      string  `json:"kind" bson:"kind" binding:"required,oneof=income expense"`
	Category  string  `json:"category,omitempty" bson:"category,omitempty"`
	Amount    float64 `json:"amount" bson:"amount" binding:"required"`
	Currency  string  `json:"currency,omitempty" bson:"currency,omitempty"`
	EntryDate string  `json:"entry_date,omitempty" bson:"entry_date,omitempty"`
	Notes     string  `json:"notes,omitempty" bson:"notes,omitempty"`
}

package agronomy

import (
	"strconv"
	"strings"
)

// Severity classifies an advisory for presentation. Callers switch on this
// value to pick styling; message text is never inspected.
type Severity string

const (
	SeverityOK      Severity = "ok"
	SeverityCaution Severity = "caution"
	SeverityWarning Severity = "warning"
)

// Locale selects the language of advisory messages.
type Locale string

const (
	LocaleVI Locale = "vi" // primary
	LocaleEN Locale = "en"
	LocaleID Locale = "id"
)

// Advisory is the result of classifying a soil pH reading.
type Advisory struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

type phBand int

const (
	bandCriticalLow phBand = iota
	bandMildLow
	bandAlkaline
	bandIdeal
)

var phMessages = map[phBand]map[Locale]string{
	bandCriticalLow: {
		LocaleVI: "CẢNH BÁO: Đất chua nặng (pH dưới 4.0). Cần bón vôi nông nghiệp trước đợt bón phân tới.",
		LocaleEN: "WARNING: Soil is strongly acidic (pH below 4.0). Apply agricultural lime before the next fertilization round.",
		LocaleID: "PERINGATAN: Tanah sangat asam (pH di bawah 4.0). Aplikasikan kapur pertanian sebelum pemupukan berikutnya.",
	},
	bandMildLow: {
		LocaleVI: "LƯU Ý: Đất hơi chua (pH 4.0-5.0). Theo dõi và cân nhắc bón vôi liều thấp.",
		LocaleEN: "CAUTION: Soil is mildly acidic (pH 4.0-5.0). Monitor and consider a light lime application.",
		LocaleID: "PERHATIAN: Tanah agak asam (pH 4.0-5.0). Pantau dan pertimbangkan pengapuran ringan.",
	},
	bandAlkaline: {
		LocaleVI: "CẢNH BÁO: Đất kiềm (pH trên 7.0). Cà phê kém hấp thu vi lượng; cân nhắc bổ sung chất hữu cơ.",
		LocaleEN: "WARNING: Soil is alkaline (pH above 7.0). Coffee takes up micronutrients poorly; consider adding organic matter.",
		LocaleID: "PERINGATAN: Tanah basa (pH di atas 7.0). Penyerapan unsur mikro oleh kopi buruk; pertimbangkan penambahan bahan organik.",
	},
	bandIdeal: {
		LocaleVI: "Độ pH đất nằm trong khoảng phù hợp cho cà phê (4.0-7.0).",
		LocaleEN: "Soil pH is within the suitable range for coffee (4.0-7.0).",
		LocaleID: "pH tanah berada dalam kisaran yang sesuai untuk kopi (4.0-7.0).",
	},
}

var phSeverities = map[phBand]Severity{
	bandCriticalLow: SeverityWarning,
	bandMildLow:     SeverityCaution,
	bandAlkaline:    SeverityWarning,
	bandIdeal:       SeverityOK,
}

// PHAdvisory classifies a raw soil pH reading into a localized advisory.
// It returns nil when raw is empty, zero, or not a number: an unreadable
// field never produces a misleading "ideal" verdict. Bands are evaluated in
// ascending order: below 4.0 critical-low, below 5.0 mild-low, above 7.0
// alkaline, otherwise ideal. Unknown locales fall back to Vietnamese.
func PHAdvisory(raw string, loc Locale) *Advisory {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	ph, err := strconv.ParseFloat(raw, 64)
	if err != nil || ph == 0 {
		return nil
	}

	var band phBand
	switch {
	case ph < 4.0:
		band = bandCriticalLow
	case ph < 5.0:
		band = bandMildLow
	case ph > 7.0:
		band = bandAlkaline
	default:
		band = bandIdeal
	}

	messages := phMessages[band]
	msg, ok := messages[loc]
	if !ok {
		msg = messages[LocaleVI]
	}

	return &Advisory{Severity: phSeverities[band], Message: msg}
}

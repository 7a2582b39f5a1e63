// Package schema holds the column-name vocabulary and the canonical status
// scale for the published tracking spreadsheets.
//
// The sheets are maintained by hand and their headers drift between English
// and Russian spellings, so every field is located through a candidate list
// (exact normalized match) with an optional token list (substring fallback).
// Keeping these lists here as plain data means a new header spelling is a
// one-line change, never a logic change.
package schema

// TrackingNumberCandidates are accepted header spellings for the tracking
// number column of the orders sheet.
var TrackingNumberCandidates = []string{
	"tracking_number", "tracking", "trackingnumber",
	"трек", "трекномер", "трек-номер", "трек номер",
}

// BatchIDCandidates are accepted header spellings for the batch identifier
// column, present in both sheets.
var BatchIDCandidates = []string{
	"batch_id", "batchid", "batch", "партия", "idпартии", "id партии",
}

// DateCandidates are accepted header spellings for the shipment date column
// of the batches sheet.
var DateCandidates = []string{
	"date", "дата", "датаотправки", "дата отправки", "shipment_date", "shipdate",
}

// DateTokens are the substring fallbacks tried when no date candidate
// matches exactly.
var DateTokens = []string{"date", "дата", "ship", "shipment", "отправ"}

// StatusCandidates are accepted header spellings for the status column of
// the batches sheet. The same list doubles as the substring fallback.
var StatusCandidates = []string{"status", "статус"}

// DefaultStatusScale is the ordered progress scale for shipment statuses.
// Position defines progress: the first entry is the least progress, the
// last means the parcel is ready for pickup. Status text from the sheet is
// matched against this scale case-insensitively; anything else renders as
// "status unknown".
var DefaultStatusScale = []string{
	"Отправлен из Китая",
	"Прошел таможенный контроль",
	"В пути по России",
	"Прибыл на склад в Москве",
	"Готов к выдаче",
}

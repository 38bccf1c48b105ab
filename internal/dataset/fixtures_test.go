package dataset

// Annotations in a deliberately non-alphabetical document order.
const testAnnotations = `{
  "b7": {"comment": "12", "label": "Dom", "desc": "", "points": [[10, 10], [20, 10], [20, 20], [10, 20]]},
  "a1": {"comment": "13", "label": "Stodoła", "desc": "kryta słomą", "points": [[50, 50], [60, 50], [55, 60]]},
  "c3": {"comment": "99", "label": "Dom", "desc": "", "points": [[0, 0], [1, 1]]},
  "d4": {"comment": "14", "label": "Ogród", "desc": null, "points": []}
}`

// Descriptions covering a multi-key, a bare number key, infinite and junk
// numbers and a column that only appears in a later record.
const testDescriptions = `[
  {"Nr bieżący": "12, 13", "Budynek": "tak", "Szerokość pręty": 3.7, "Powierzchnia morgi": Infinity},
  {"Nr bieżący": 14, "Budynek": "", "Szerokość pręty": -2, "Powierzchnia morgi": "1.5", "Właściciel": "Jan Kowalski"},
  {"Nr bieżący": "15", "Budynek": "nie", "Szerokość pręty": "n/a", "Powierzchnia morgi": NaN}
]`

func testSchema() Schema {
	return Schema{
		KeyField:       "Nr bieżący",
		NumericColumns: []string{"Szerokość pręty", "Powierzchnia morgi", "Powierzchnia stopy"},
	}
}

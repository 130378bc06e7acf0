// Package curriculum serves the screening question sequence and drives
// adaptive leveling from the attempt log.
package curriculum

// Item is one screening question, either a writing or a speaking task.
type Item struct {
	ID      int    `json:"id"`
	Type    string `json:"type"` // writing or speaking
	Lang    string `json:"lang"`
	Target  string `json:"target"`
	Content string `json:"content"`
}

// screeningItems is the fixed assessment sequence, mixing writing and
// speaking tasks across both languages. Served in order.
var screeningItems = []Item{
	{
		ID:      1,
		Type:    "writing",
		Lang:    "english",
		Target:  "b",
		Content: "The sound is buh... as in Ball. Write the letter b.",
	},
	{
		ID:      2,
		Type:    "writing",
		Lang:    "nepali",
		Target:  "ka",
		Content: "क भन्नुहोस् (Say Ka). Write Ka.",
	},
	{
		ID:      3,
		Type:    "speaking",
		Lang:    "english",
		Target:  "The cat sat on the mat",
		Content: "Read this sentence aloud:",
	},
	{
		ID:      4,
		Type:    "writing",
		Lang:    "english",
		Target:  "d",
		Content: "The sound is duh... as in Dog. Write the letter d.",
	},
	{
		ID:      5,
		Type:    "speaking",
		Lang:    "nepali",
		Target:  "मेरो नाम राम हो",
		Content: "यो वाक्य पढ्नुहोस् (Read this sentence):",
	},
	{
		ID:      6,
		Type:    "writing",
		Lang:    "nepali",
		Target:  "ma",
		Content: "म भन्नुहोस् (Say Ma). Write Ma.",
	},
}

// Screening returns the assessment question sequence.
func Screening() []Item {
	items := make([]Item, len(screeningItems))
	copy(items, screeningItems)
	return items
}

package catalog

import "fmt"

var newsNames = []string{
	"Old Zhang", "Ah Gui", "Little Liu", "David", "Ah Hua", "Old Li",
	"Little Chen", "Ah Qiang", "Old Wang", "Tony", "Mike", "Kevin",
	"Jason", "Eric", "Jerry", "Andy",
}

var newsAmounts = []string{"$50", "$80", "$200", "$500", "$800", "$1,200", "$2,000", "$3,500"}

func newsName(r Rand) string   { return newsNames[r.Intn(len(newsNames))] }
func newsAge(r Rand) int       { return 22 + r.Intn(35) }
func newsAmount(r Rand) string { return newsAmounts[r.Intn(len(newsAmounts))] }

// World-news templates: one NPC misfortune per call, names and sums drawn
// from the pools above.
func defaultNewsTemplates() []NewsTemplate {
	return []NewsTemplate{
		func(r Rand) News {
			return News{
				ID: "death_overwork", Icon: "☠️", Tone: NewsDeath,
				Text: fmt.Sprintf("%s (%d) collapsed after a 72-hour stretch in a restaurant kitchen. Nobody called it in for three days.", newsName(r), newsAge(r)),
			}
		},
		func(r Rand) News {
			return News{
				ID: "death_fall", Icon: "🏗️", Tone: NewsDeath,
				Text: fmt.Sprintf("%s fell from a scaffold. No harness, no insurance. Coworkers collected %s for the family.", newsName(r), newsAmount(r)),
			}
		},
		func(r Rand) News {
			return News{
				ID: "deported_raid", Icon: "✈️", Tone: NewsDeport,
				Text: fmt.Sprintf("%s (%d) was picked up at work and deported within the week. Eight years here, gone in five days.", newsName(r), newsAge(r)),
			}
		},
		func(r Rand) News {
			return News{
				ID: "ruin_gamble", Icon: "🎰", Tone: NewsRuin,
				Text: fmt.Sprintf("%s lost two years of savings at the casino buses. The family doesn't know yet.", newsName(r)),
			}
		},
		func(r Rand) News {
			return News{
				ID: "ruin_scam", Icon: "💸", Tone: NewsRuin,
				Text: fmt.Sprintf("%s wired %s to an 'immigration consultant' who never existed.", newsName(r), newsAmount(r)),
			}
		},
		func(r Rand) News {
			return News{
				ID: "misery_eviction", Icon: "📦", Tone: NewsMisery,
				Text: fmt.Sprintf("%s (%d) was evicted and is sleeping in the 24-hour laundromat for now.", newsName(r), newsAge(r)),
			}
		},
		func(r Rand) News {
			return News{
				ID: "irony_vacancy", Icon: "💼", Tone: NewsIrony,
				Text:       fmt.Sprintf("%s quit the kitchen without notice. The owner is desperate and paying a hiring bonus to whoever shows up.", newsName(r)),
				PlayerGain: map[string]int{"money": 150},
				GainText:   "You picked up the abandoned shift for a $150 bonus.",
			}
		},
		func(r Rand) News {
			return News{
				ID: "irony_firesale", Icon: "🏷️", Tone: NewsIrony,
				Text:       fmt.Sprintf("%s is selling everything before flying home for good. Prices that hurt to look at.", newsName(r)),
				PlayerGain: map[string]int{"money": 100, "san": 3},
				GainText:   "You bought half their kitchen for almost nothing.",
			}
		},
		func(r Rand) News {
			return News{
				ID: "misery_clinic", Icon: "🏥", Tone: NewsMisery,
				Text: fmt.Sprintf("%s has been rationing insulin for months. The free clinic waitlist is nine weeks long.", newsName(r)),
			}
		},
	}
}

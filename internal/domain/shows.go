package domain

// Show filename substrings. Every transcript and audio file carries one of
// these in its name, which is how records are grouped per feed.
const (
	ShowNewstalkBreakfast = "Newstalk_Breakfast"
	ShowPatKenny          = "Pat_Kenny"
	ShowHardShoulder      = "Hard_Shoulder"
	ShowLunchtimeLive     = "Lunchtime_Live"
)

// Shows lists the known feeds in broadcast order.
var Shows = []string{
	ShowNewstalkBreakfast,
	ShowPatKenny,
	ShowHardShoulder,
	ShowLunchtimeLive,
}

package mailbox

import "github.com/squaredcircle/booker/booker/game"

// Template is one scripted inbox scenario. Choices carry tagged effect
// data so a saved inbox round-trips; nothing executable is persisted.
type Template struct {
	From    string
	Subject string
	Content string
	Choices []game.EmailChoice
}

// Templates is the fixed scenario catalog the generator draws from.
var Templates = []Template{
	{
		From:    "Network Executive",
		Subject: "TV Contract Renewal",
		Content: "We need to discuss your upcoming TV contract renewal. Your current ratings are concerning...",
		Choices: []game.EmailChoice{
			{Text: "Schedule a meeting", Effect: game.Effect{Kind: game.EffectAdjustMoney, Amount: 100_000}},
			{Text: "Ignore for now", Effect: game.Effect{Kind: game.EffectAdjustReputation, Amount: -5}},
		},
	},
	{
		From:    "Wrestler Agent",
		Subject: "Contract Negotiation",
		Content: "My client is demanding a significant pay raise or they will consider other options.",
		Choices: []game.EmailChoice{
			{Text: "Agree to raise", Effect: game.Effect{Kind: game.EffectAdjustMoney, Amount: -200_000}},
			{Text: "Refuse and risk losing talent", Effect: game.Effect{Kind: game.EffectAdjustReputation, Amount: -10}},
		},
	},
	{
		From:    "Medical Team",
		Subject: "Injury Report",
		Content: "We have several wrestlers who need time off for injuries. This will affect your upcoming shows.",
		Choices: []game.EmailChoice{
			{Text: "Give them time off", Effect: game.Effect{Kind: game.EffectAdjustReputation, Amount: 5}},
			{Text: "Push them to perform", Effect: game.Effect{Kind: game.EffectAdjustReputation, Amount: -15}},
		},
	},
}

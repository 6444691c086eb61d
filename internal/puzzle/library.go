package puzzle

import "github.com/Newjack1108/robotrecruit-ai-sub001/internal/domain"

// TaskTemplate is a library entry before per-day parameterization
type TaskTemplate struct {
	Key          string
	Name         string
	Description  string
	BaseReward   int
	BaseTimeCost int
	Risk         domain.RiskTier
}

// Library is the fixed template pool. Order is part of the determinism contract:
// reordering entries changes every generated puzzle.
var Library = []TaskTemplate{
	{Key: "scout", Name: "Scout the Market", Description: "Send a recruit to map out what competitors are shipping.", BaseReward: 40, BaseTimeCost: 3, Risk: domain.RiskLow},
	{Key: "prototype", Name: "Build a Prototype", Description: "Wire up a rough demo of the next assistant feature.", BaseReward: 75, BaseTimeCost: 5, Risk: domain.RiskMedium},
	{Key: "pitch", Name: "Pitch an Investor", Description: "Put the best bot forward in front of a skeptical investor.", BaseReward: 110, BaseTimeCost: 6, Risk: domain.RiskHigh},
	{Key: "train", Name: "Train the Assistant", Description: "Feed the assistant fresh examples until it stops hallucinating.", BaseReward: 55, BaseTimeCost: 4, Risk: domain.RiskLow},
	{Key: "outreach", Name: "Community Outreach", Description: "Answer questions in the forum and hand out power-ups.", BaseReward: 35, BaseTimeCost: 2, Risk: domain.RiskLow},
	{Key: "audit", Name: "Security Audit", Description: "Comb through the bots' permissions before someone else does.", BaseReward: 65, BaseTimeCost: 4, Risk: domain.RiskMedium},
	{Key: "launch", Name: "Soft Launch", Description: "Open the new tier to a handful of subscribers and watch the graphs.", BaseReward: 120, BaseTimeCost: 7, Risk: domain.RiskHigh},
	{Key: "refactor", Name: "Refactor the Core", Description: "Untangle the prompt pipeline so tomorrow goes faster.", BaseReward: 50, BaseTimeCost: 3, Risk: domain.RiskMedium},
	{Key: "partner", Name: "Forge a Partnership", Description: "Convince another arcade to feature your recruits.", BaseReward: 90, BaseTimeCost: 5, Risk: domain.RiskHigh},
}

package classify

import "github.com/nlaakso/agentpulse/internal/model"

// categoryRule maps keywords to a category. Rules are evaluated in
// slice order; the first match wins.
type categoryRule struct {
	Category model.Category
	Keywords []string
}

// categoryRules is the fixed classification vocabulary, in precedence
// order. Override outranks governance so that revoked/forced actions
// never classify as routine policy work.
var categoryRules = []categoryRule{
	{model.CategoryOverride, []string{"override", "rollback", "suspend", "bypass", "emergency stop"}},
	{model.CategoryGovernance, []string{"approve", "reject", "quota", "policy", "audit", "review", "ratify", "compliance"}},
	{model.CategoryTrading, []string{"buy", "sell", "bid", "hedge", "auction", "settlement", "arbitrage", "exposure", "position", "price"}},
	{model.CategoryMaintenance, []string{"maintenance", "inspection", "repair", "anomaly", "fault", "sensor", "transformer", "inverter", "interlock", "monitoring"}},
	{model.CategoryDispatch, []string{"dispatch", "battery", "charge", "charging", "discharge", "route", "reroute", "convoy", "depot", "standby", "fleet"}},
}

// criticalKeywords escalate impact straight to critical.
var criticalKeywords = []string{"safety", "emergency", "interlock", "shutdown", "intrusion", "override", "tripped"}

// emergencyKeywords escalate urgency to emergency.
var emergencyKeywords = []string{"emergency", "immediately", "tripped", "blackout"}

// urgentKeywords escalate urgency to urgent.
var urgentKeywords = []string{"urgent", "halt", "escalate", "quarantine", "storm"}

// jargonKeywords mark domain-heavy phrasing for the complexity heuristic.
var jargonKeywords = []string{
	"arbitrage", "congestion", "frequency-response", "baseload", "interlock",
	"voltage excursion", "thermal ceiling", "exposure quota", "day-ahead",
	"clearing price", "autonomy budget",
}

// clauseMarkers indicate multi-clause phrasing for the complexity heuristic.
var clauseMarkers = []string{" and ", " while ", " after ", " before ", " pending ", ";", " ahead of "}

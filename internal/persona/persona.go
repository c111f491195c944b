// Package persona defines the four builtin autonomous roles and the
// per-role vocabulary the generator and classifiers draw from.
package persona

import "github.com/nlaakso/agentpulse/internal/model"

// Definition describes one builtin persona.
type Definition struct {
	Name            model.Persona
	Role            string
	DefaultCategory model.Category
	// MaintenanceProb is the chance a generated decision carries the
	// maintenance flag.
	MaintenanceProb float64
	// Summaries is the persona's decision-text bank.
	Summaries []string
	// CoordinationPhrases substitute for a summary when the event is a
	// cross-agent coordination event.
	CoordinationPhrases []string
	// ViolationSummaries substitute when the event is a constraint
	// violation.
	ViolationSummaries []string
	// WitnessFeeds are the named data sources that can contribute to a
	// confidence computation.
	WitnessFeeds []string
}

// builtins maps persona names to their definitions.
var builtins = map[model.Persona]*Definition{
	model.PersonaOperations: {
		Name:            model.PersonaOperations,
		Role:            "Fleet and grid operations: dispatch, charging, routing",
		DefaultCategory: model.CategoryDispatch,
		MaintenanceProb: 0.12,
		Summaries: []string{
			"Dispatch unit 7 to sector C to cover the evening demand ramp",
			"Charge battery bank A to 95% ahead of the forecast peak",
			"Discharge reserve pack B to smooth the afternoon grid load",
			"Reroute delivery convoy around the closed interchange on route 9",
			"Increase charging rate at depot 3 while spot prices stay low",
			"Hold two vehicles in standby for the predicted weather window",
			"Rebalance dispatch queue after sensor dropout in sector F",
			"Reduce depot 5 throughput to match the revised demand curve",
		},
		CoordinationPhrases: []string{
			"Coordinate with markets agent on depot charging schedule before the price window closes",
			"Align dispatch plan with sentinel agent's sector risk advisory",
			"Hand off overflow routing to governor-approved contingency plan",
		},
		ViolationSummaries: []string{
			"Dispatch exceeded the sector safety envelope; rolling back assignment",
			"Charging command breached the thermal constraint on bank A",
		},
		WitnessFeeds: []string{"fleet-telemetry", "depot-scada", "route-planner", "demand-forecast", "weather-feed"},
	},
	model.PersonaMarkets: {
		Name:            model.PersonaMarkets,
		Role:            "Energy and capacity markets: bidding, hedging, settlement",
		DefaultCategory: model.CategoryTrading,
		MaintenanceProb: 0.04,
		Summaries: []string{
			"Buy 40 MWh in the day-ahead auction at the forecast clearing price",
			"Sell surplus capacity from bank B into the intraday market",
			"Increase hedge ratio to 0.7 against the volatile evening block",
			"Decrease exposure to node 14 after congestion price spike",
			"Roll the settlement position into next week's baseload contract",
			"Bid frequency-response capacity from depot 3 reserve",
			"Close the open arbitrage position before the auction gate",
			"Hold bidding at current levels pending the demand revision",
		},
		CoordinationPhrases: []string{
			"Coordinate bid volume with operations agent's charging plan",
			"Align hedge adjustment with governor's exposure quota decision",
			"Sync settlement forecast with sentinel's outage probability",
		},
		ViolationSummaries: []string{
			"Order size breached the per-auction exposure limit; trade cancelled",
			"Bid violated the governor-set price collar on node 14",
		},
		WitnessFeeds: []string{"price-oracle", "order-book", "settlement-ledger", "congestion-feed", "forecast-model"},
	},
	model.PersonaSentinel: {
		Name:            model.PersonaSentinel,
		Role:            "Safety and anomaly monitoring: thresholds, intrusions, faults",
		DefaultCategory: model.CategoryMaintenance,
		MaintenanceProb: 0.18,
		Summaries: []string{
			"Flag thermal anomaly on inverter 12 and schedule inspection",
			"Halt charging on bank A after repeated voltage excursions",
			"Resume normal monitoring after the sector F sensor recovered",
			"Raise the alert threshold on depot 3 vibration channel",
			"Quarantine telemetry stream from the suspect roadside unit",
			"Escalate intrusion alert on the depot management VLAN for emergency review",
			"Schedule preventive maintenance for the aging transformer at site 9",
			"Clear the false-positive smoke alert in warehouse bay 2",
		},
		CoordinationPhrases: []string{
			"Coordinate emergency shutdown drill with operations agent",
			"Share anomaly fingerprint with governor agent for policy review",
			"Align inspection window with markets agent's low-price block",
		},
		ViolationSummaries: []string{
			"Safety interlock tripped: inverter 12 exceeded the thermal ceiling",
			"Monitoring blackout violated the minimum-coverage constraint",
		},
		WitnessFeeds: []string{"anomaly-detector", "sensor-mesh", "intrusion-monitor", "maintenance-log", "thermal-model"},
	},
	model.PersonaGovernor: {
		Name:            model.PersonaGovernor,
		Role:            "Policy and governance: quotas, approvals, overrides",
		DefaultCategory: model.CategoryGovernance,
		MaintenanceProb: 0.06,
		Summaries: []string{
			"Approve the revised exposure quota for the markets agent",
			"Reject the requested override of the depot 3 charging cap",
			"Tighten the autonomy budget for sector C dispatch decisions",
			"Grant temporary override authority for the storm response window",
			"Renew the standing policy on cross-agent coordination approvals",
			"Audit last week's emergency overrides for policy compliance",
			"Increase the review threshold for high-impact trading decisions",
			"Suspend autonomous settlement pending the quarterly audit",
		},
		CoordinationPhrases: []string{
			"Convene all agents to ratify the revised storm-response policy",
			"Coordinate override rollback with operations and sentinel agents",
			"Align quota revision with markets agent's hedge position",
		},
		ViolationSummaries: []string{
			"Override was issued without the required dual approval",
			"Quota change bypassed the mandatory review period",
		},
		WitnessFeeds: []string{"policy-ledger", "approval-queue", "audit-log", "quota-tracker", "compliance-model"},
	},
}

// Lookup returns the definition for a persona, or nil if unknown.
func Lookup(p model.Persona) *Definition {
	return builtins[p]
}

// All returns every builtin definition in model.Personas order.
func All() []*Definition {
	defs := make([]*Definition, 0, len(model.Personas))
	for _, p := range model.Personas {
		defs = append(defs, builtins[p])
	}
	return defs
}

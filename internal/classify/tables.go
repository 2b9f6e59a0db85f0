package classify

// Trades maps observation text to the responsible trade. Ordering matters:
// more specific phrases (e.g. "light fixture") sit above the generic rules
// that would also match them.
var Trades = Table(NewTable(
	[2]string{`electric|outlet|wiring|light fixture|panel|breaker|conduit|switch`, "Electrical"},
	[2]string{`plumb|pipe|drain|faucet|valve|water heater|leak|toilet|sink`, "Plumbing"},
	[2]string{`hvac|duct|diffuser|thermostat|air handler|mechanical|ventilation|exhaust`, "HVAC"},
	[2]string{`drywall|gypsum|sheetrock|taping|patch wall`, "Drywall"},
	[2]string{`paint|primer|touch.?up|stain(?:ed)? ceiling tile`, "Painting"},
	[2]string{`floor|tile|carpet|vct|grout|baseboard`, "Flooring"},
	[2]string{`concrete|slab|curb|sidewalk|pour`, "Concrete"},
	[2]string{`fram(?:e|ing)|stud|carpentr|millwork|casework|trim|cabinet`, "Carpentry"},
	[2]string{`roof|flashing|membrane|gutter|downspout`, "Roofing"},
	[2]string{`mason|brick|block|cmu|mortar`, "Masonry"},
	[2]string{`glass|glazing|window|storefront|curtain wall`, "Glazing"},
	[2]string{`door|hardware|closer|hinge|lockset`, "Doors & Hardware"},
	[2]string{`landscap|irrigation|sod|planting|grading`, "Landscaping"},
	[2]string{`fire (?:alarm|sprinkler|suppression)|sprinkler head`, "Fire Protection"},
	[2]string{`steel|weld|metal deck|joist`, "Structural Steel"},
	[2]string{`insulat|fireproof|caulk|seal(?:ant)?`, "Insulation"},
))

// Priorities maps urgency cues to a priority label. Safety language is listed
// first so it always beats the generic "important" cues. Units with no
// urgency cue fall through to the caller-supplied default.
var Priorities = Table(NewTable(
	[2]string{`critical|urgent|safety|hazard|danger|immediately|asap|life.?safety|code violation`, "Critical"},
	[2]string{`high priority|important|must (?:be|fix|complete)|before (?:inspection|closing|turnover)|blocking`, "High"},
	[2]string{`low priority|when possible|eventually|nice to have|cosmetic|punch.?out later`, "Low"},
))

// PunchCategories maps deficiency text to a work category
var PunchCategories = Table(NewTable(
	[2]string{`touch.?up|paint`, "Touch-up"},
	[2]string{`clean|dust|debris|wipe|vacuum`, "Cleaning"},
	[2]string{`adjust|align|level|tighten|rehang`, "Adjustment"},
	[2]string{`replace|install|missing|reinstall`, "Replace/Install"},
	[2]string{`repair|fix|patch|crack|damage|broken|leak`, "Repair"},
))

// ActionCategories maps meeting action text to a workflow category
var ActionCategories = Table(NewTable(
	[2]string{`rfi|request for information`, "RFI"},
	[2]string{`submittal|shop drawing|product data|sample`, "Submittals"},
	[2]string{`schedule|sequence|milestone|look.?ahead`, "Schedule"},
	[2]string{`safety|osha|toolbox|ppe`, "Safety"},
	[2]string{`inspect|test|punch|quality|deficien`, "Quality"},
	[2]string{`order|procure|purchase|deliver|lead.?time`, "Procurement"},
	[2]string{`change order|pco|cost|budget|invoice|pay app`, "Cost"},
	[2]string{`coordinat|meeting|call|review|follow.?up`, "Coordination"},
))

// OwnerRoles maps role language in a unit to a responsible role label, used
// when no roster name matches
var OwnerRoles = Table(NewTable(
	[2]string{`architect`, "Architect"},
	[2]string{`structural engineer|engineer of record|\beor\b`, "Engineer"},
	[2]string{`superintendent|\bsuper\b|field office`, "Superintendent"},
	[2]string{`project manager|\bpm\b`, "Project Manager"},
	[2]string{`owner|client|developer`, "Owner"},
	[2]string{`subcontractor|\bsub\b|vendor|supplier`, "Subcontractor"},
))

package calculator

// Categories used by the built-in program.
const (
	CategoryResidential    = "Residential"
	CategoryStudySupport   = "Study support"
	CategoryAmenity        = "Amenity"
	CategoryAdministration = "Administration"
)

// Typical headcount range of a single dormitory building.
const (
	TypicalMinResidents = 100
	TypicalMaxResidents = 1400
)

var fixedRules = []Rule{
	{Category: CategoryAmenity, Name: "Convenience store", Module: ModuleXXL, Formula: fixed(1)},
	{Category: CategoryAdministration, Name: "Admin lounge", Module: ModuleMax, Formula: fixed(1)},
	{Category: CategoryAdministration, Name: "Security office", Module: ModuleS, Formula: fixed(1)},
	{Category: CategoryAdministration, Name: "Night-duty office", Module: ModuleS, Formula: fixed(1)},
	{Category: CategoryAdministration, Name: "Staff break room", Module: ModuleS, Formula: fixed(1)},
	{Category: CategoryAdministration, Name: "Dorm-master room (M)", Module: ModuleM, Formula: fixed(1)},
	{Category: CategoryAdministration, Name: "Dorm-master room (F)", Module: ModuleM, Formula: fixed(1)},
}

// Rules returns the sizing rules for mode in program order: headcount-driven spaces first,
// then the fixed spaces.
func Rules(mode Mode) []Rule {
	rules := []Rule{
		{Category: CategoryResidential, Name: "General room", Module: ModuleM, Formula: Formula{Kind: FormulaLinear, Divisor: 2}},
		{Category: CategoryStudySupport, Name: "Study lounge", Module: ModuleL, Formula: ceilDivide(mode.StudyDivisor())},
		{Category: CategoryAmenity, Name: "Gym", Module: ModuleXL, Formula: ceilDivide(330)},
		{Category: CategoryAmenity, Name: "Shared kitchen", Module: ModuleM, Formula: ceilDivide(180)},
		{Category: CategoryAmenity, Name: "Laundry", Module: ModuleL, Formula: ceilDivide(300)},
		{Category: CategoryAmenity, Name: "Parcel & storage", Module: ModuleM, Formula: ceilDivide(150)},
	}
	return append(rules, fixedRules...)
}

func ceilDivide(divisor int) Formula {
	return Formula{Kind: FormulaCeilDivide, Divisor: divisor}
}

func fixed(count int) Formula {
	return Formula{Kind: FormulaFixed, Count: count}
}

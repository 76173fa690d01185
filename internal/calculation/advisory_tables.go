package calculation

import "github.com/rgehrsitz/estimators/internal/domain"

// DefaultAdvisoryTable returns the wage-claim advisory text
func DefaultAdvisoryTable() domain.AdvisoryTable {
	return domain.AdvisoryTable{
		WageLabels: map[domain.WageType]string{
			domain.WageOvertime:    "overtime wages",
			domain.WageMinimumWage: "minimum wage compliance",
			domain.WageCommissions: "commission payments",
			domain.WageFinalPay:    "final pay",
		},
		WageCategories: map[domain.WageType][]string{
			domain.WageOvertime: {
				"Hours worked over 40 per week",
				"Overtime rate calculations (1.5x or 2x)",
				"Exempt vs. non-exempt classification",
				"Compensatory time policies",
			},
			domain.WageMinimumWage: {
				"Federal minimum wage compliance",
				"State minimum wage requirements",
				"Tip credit provisions",
				"Youth wage considerations",
			},
			domain.WageCommissions: {
				"Commission agreement terms",
				"Earned vs. paid commission timing",
				"Chargebacks and deductions",
				"Termination commission policies",
			},
			domain.WageFinalPay: {
				"Final paycheck timing requirements",
				"Accrued vacation/PTO payout",
				"Expense reimbursements",
				"Severance considerations",
			},
		},
		CommonFactors: map[domain.WageType][]string{
			domain.WageOvertime: {
				"FLSA overtime provisions",
				"State overtime laws",
				"Employee classification status",
				"Workweek definitions",
				"Regular rate calculations",
			},
			domain.WageMinimumWage: {
				"Federal vs. state wage floor",
				"Industry-specific exemptions",
				"Piece rate considerations",
				"Training wage provisions",
				"Cost of living adjustments",
			},
			domain.WageCommissions: {
				"Written commission agreements",
				"Calculation methodology",
				"Payment timing terms",
				"Post-termination commissions",
				"Clawback provisions",
			},
			domain.WageFinalPay: {
				"State-specific timing laws",
				"Voluntary vs. involuntary separation",
				"PTO/vacation accrual policies",
				"Deduction limitations",
				"Wage claim filing deadlines",
			},
		},
		TimeBuckets: map[domain.TimeSinceOwed]domain.TimeBucketRules{
			domain.OwedLessThan30: {
				Label:   "Less than 30 days",
				Note:    "Recent wage issues may still be within normal payroll correction windows. Many states require prompt payment but allow reasonable processing time.",
				Urgency: domain.UrgencyLow,
			},
			domain.Owed30To90: {
				Label:   "30–90 days",
				Note:    "Wage claims in this timeframe often fall within standard dispute resolution periods. Documentation of hours worked and pay records is typically still readily available.",
				Urgency: domain.UrgencyModerate,
			},
			domain.Owed90To180: {
				Label:   "90–180 days",
				Note:    "Claims approaching this duration may warrant formal documentation. Many administrative complaint processes have filing windows to consider.",
				Urgency: domain.UrgencyElevated,
			},
			domain.Owed180To365: {
				Label:   "180 days–1 year",
				Note:    "Extended wage disputes may involve additional considerations. Some states have specific statutes of limitations that begin to apply.",
				Urgency: domain.UrgencyHigh,
			},
			domain.OwedMoreThanAYear: {
				Label:   "Over 1 year",
				Note:    "Long-standing wage issues require careful review of applicable limitation periods. Federal claims under FLSA generally have a 2-year statute (3 years for willful violations); state laws vary significantly.",
				Urgency: domain.UrgencyHigh,
			},
		},
		StateNotes: map[string]string{
			"CA": "California has robust wage and hour protections, including waiting time penalties for late final pay.",
			"NY": "New York has specific notice and recordkeeping requirements for wage claims.",
			"TX": "Texas follows federal FLSA minimums; wage claims are typically filed with the Texas Workforce Commission.",
			"FL": "Florida does not have a state labor department for wage claims; federal law primarily applies.",
			"IL": "Illinois has its own minimum wage and overtime rules that may exceed federal requirements.",
			"PA": "Pennsylvania has specific rules for final pay timing based on separation type.",
			"OH": "Ohio wage claims can be pursued through the state or federal channels.",
			"GA": "Georgia primarily follows federal FLSA standards for wage and hour matters.",
			"NC": "North Carolina requires timely wage payment and has specific final pay rules.",
			"MI": "Michigan has a state minimum wage and specific rules for commission agreements.",
		},
		DefaultStateNote: "Your state may have specific wage and hour laws. Laws vary by state, and consulting your state labor department or a qualified professional is recommended.",
	}
}

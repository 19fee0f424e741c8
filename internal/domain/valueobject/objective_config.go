// Package valueobject contains domain value objects for the KPI dashboard.
package valueobject

// Department is one of the fixed business units that own objectives.
type Department string

const (
	DepartmentGrafico   Department = "Grafico"
	DepartmentSales     Department = "Sales"
	DepartmentFinancial Department = "Financial"
	DepartmentAgency    Department = "Agency"
	DepartmentPMCompany Department = "PM Company"
	DepartmentMarketing Department = "Marketing"
)

// Departments returns every department in display order.
func Departments() []Department {
	return []Department{
		DepartmentGrafico,
		DepartmentSales,
		DepartmentFinancial,
		DepartmentAgency,
		DepartmentPMCompany,
		DepartmentMarketing,
	}
}

// IsValid reports whether d belongs to the closed department set.
func (d Department) IsValid() bool {
	for _, known := range Departments() {
		if d == known {
			return true
		}
	}
	return false
}

// ObjectiveType determines how monthly values aggregate into a current value.
type ObjectiveType string

const (
	// ObjectiveTypeCumulative sums monthly values year-to-date.
	ObjectiveTypeCumulative ObjectiveType = "Cumulativo"
	// ObjectiveTypeMaintenance averages monthly values year-to-date.
	ObjectiveTypeMaintenance ObjectiveType = "Mantenimento"
	// ObjectiveTypeLastMonth uses the most recent recorded month.
	ObjectiveTypeLastMonth ObjectiveType = "Ultimo mese"
)

// ObjectiveTypes returns every objective type.
func ObjectiveTypes() []ObjectiveType {
	return []ObjectiveType{
		ObjectiveTypeCumulative,
		ObjectiveTypeMaintenance,
		ObjectiveTypeLastMonth,
	}
}

// IsValid reports whether t is a known objective type.
func (t ObjectiveType) IsValid() bool {
	switch t {
	case ObjectiveTypeCumulative, ObjectiveTypeMaintenance, ObjectiveTypeLastMonth:
		return true
	}
	return false
}

// NumberFormat controls how an objective's figures are displayed.
// It never affects calculations.
type NumberFormat string

const (
	NumberFormatNumber     NumberFormat = "number"
	NumberFormatCurrency   NumberFormat = "currency"
	NumberFormatPercentage NumberFormat = "percentage"
	NumberFormatDecimal    NumberFormat = "decimal"
)

// IsValid reports whether f is a known number format.
func (f NumberFormat) IsValid() bool {
	switch f {
	case NumberFormatNumber, NumberFormatCurrency, NumberFormatPercentage, NumberFormatDecimal:
		return true
	}
	return false
}

// OrDefault returns f, or NumberFormatNumber when f is empty.
func (f NumberFormat) OrDefault() NumberFormat {
	if f == "" {
		return NumberFormatNumber
	}
	return f
}

package payroll

// MinimumWage2025 is the Colombian legal monthly minimum wage for 2025.
const MinimumWage2025 = 1423500

// SalaryPreset is a monthly salary offered as a quick choice.
type SalaryPreset struct {
	Amount      float64
	Description string
}

// CommonSalaries lists monthly salaries offered as quick picks.
var CommonSalaries = []SalaryPreset{
	{MinimumWage2025, "Salario Mínimo Legal 2025"},
	{2000000, "2 Millones"},
	{2500000, "2.5 Millones"},
	{3000000, "3 Millones"},
	{3500000, "3.5 Millones"},
	{4000000, "4 Millones"},
	{5000000, "5 Millones"},
	{6000000, "6 Millones"},
	{8000000, "8 Millones"},
	{10000000, "10 Millones"},
}

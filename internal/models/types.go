package models

// Record is one salary observation from the dataset
type Record struct {
	Year        int     `json:"year"`
	Seniority   string  `json:"seniority"`
	Contract    string  `json:"contract"`
	CompanySize string  `json:"company_size"`
	Role        string  `json:"role"`
	Residence   string  `json:"residence_country_code"`
	Remote      string  `json:"remote_category"`
	SalaryUSD   float64 `json:"salary_usd"`
}

// Summary holds the headline metrics for a set of records
type Summary struct {
	MeanSalary float64 `json:"mean_salary"`
	MaxSalary  float64 `json:"max_salary"`
	Count      int     `json:"count"`
	TopRole    string  `json:"top_role"`
}

// RoleMean is the mean salary of one role
type RoleMean struct {
	Role       string  `json:"role"`
	MeanSalary float64 `json:"mean_salary"`
}

// Bin is one bucket of the salary histogram, covering [Lower, Upper)
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// CategoryCount pairs a category label with its number of records
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CountryMean is the mean salary of one country, keyed by its ISO code
type CountryMean struct {
	Code       string  `json:"country_code"`
	MeanSalary float64 `json:"mean_salary"`
	Name       string  `json:"country_name"`
}

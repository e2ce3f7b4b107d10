package countries

// alpha2Names maps ISO 3166-1 alpha-2 codes to display names.
var alpha2Names = map[string]string{
	"US": "United States",
	"AU": "Australia",
	"CA": "Canada",
	"JP": "Japan",
	"GB": "United Kingdom",
	"MX": "Mexico",
	"NL": "Netherlands",
	"ES": "Spain",
	"FR": "France",
	"MT": "Malta",
	"IT": "Italy",
	"LT": "Lithuania",
	"PH": "Philippines",
	"NZ": "New Zealand",
	"DE": "Germany",
	"LV": "Latvia",
	"IE": "Ireland",
	"MK": "North Macedonia",
	"AT": "Austria",
	"PL": "Poland",
	"SK": "Slovakia",
	"BR": "Brazil",
	"SI": "Slovenia",
	"FI": "Finland",
	"HK": "Hong Kong",
	"LS": "Lesotho",
	"IN": "India",
	"JM": "Jamaica",
	"CH": "Switzerland",
	"BE": "Belgium",
	"ID": "Indonesia",
	"PE": "Peru",
	"SG": "Singapore",
	"PT": "Portugal",
	"HU": "Hungary",
	"RO": "Romania",
	"AR": "Argentina",
	"ZA": "South Africa",
	"PA": "Panama",
	"EE": "Estonia",
	"LU": "Luxembourg",
	"DZ": "Algeria",
	"EG": "Egypt",
	"CL": "Chile",
	"GR": "Greece",
	"KE": "Kenya",
	"CD": "Democratic Republic of the Congo",
	"SE": "Sweden",
	"KR": "South Korea",
	"TW": "Taiwan",
	"NO": "Norway",
	"CZ": "Czech Republic",
	"TR": "Turkey",
	"NG": "Nigeria",
	"CY": "Cyprus",
	"CO": "Colombia",
	"DK": "Denmark",
	"AE": "United Arab Emirates",
	"BG": "Bulgaria",
	"JO": "Jordan",
	"RS": "Serbia",
	"UA": "Ukraine",
	"PR": "Puerto Rico",
	"SV": "El Salvador",
	"EC": "Ecuador",
	"DO": "Dominican Republic",
	"MY": "Malaysia",
	"XK": "Kosovo",
	"CR": "Costa Rica",
	"ZM": "Zambia",
	"AM": "Armenia",
	"RW": "Rwanda",
	"IL": "Israel",
	"LB": "Lebanon",
	"HR": "Croatia",
	"PK": "Pakistan",
	"HN": "Honduras",
	"VE": "Venezuela",
	"BM": "Bermuda",
	"VN": "Vietnam",
	"GE": "Georgia",
	"SA": "Saudi Arabia",
	"OM": "Oman",
	"BA": "Bosnia and Herzegovina",
	"UG": "Uganda",
	"MU": "Mauritius",
	"TH": "Thailand",
	"QA": "Qatar",
	"RU": "Russia",
	"TN": "Tunisia",
	"GH": "Ghana",
	"AD": "Andorra",
	"MD": "Moldova",
	"UZ": "Uzbekistan",
	"CF": "Central African Republic",
	"KW": "Kuwait",
	"IR": "Iran",
	"AS": "American Samoa",
	"CN": "China",
	"BO": "Bolivia",
	"IQ": "Iraq",
	"JE": "Jersey",
}

// alpha3Names maps ISO 3166-1 alpha-3 codes to display names.
var alpha3Names = map[string]string{
	"USA": "United States",
	"AUS": "Australia",
	"CAN": "Canada",
	"JPN": "Japan",
	"GBR": "United Kingdom",
	"MEX": "Mexico",
	"NLD": "Netherlands",
	"ESP": "Spain",
	"FRA": "France",
	"MLT": "Malta",
	"ITA": "Italy",
	"LTU": "Lithuania",
	"PHL": "Philippines",
	"NZL": "New Zealand",
	"DEU": "Germany",
	"LVA": "Latvia",
	"IRL": "Ireland",
	"MKD": "North Macedonia",
	"AUT": "Austria",
	"POL": "Poland",
	"SVK": "Slovakia",
	"BRA": "Brazil",
	"SVN": "Slovenia",
	"FIN": "Finland",
	"HKG": "Hong Kong",
	"LSO": "Lesotho",
	"IND": "India",
	"JAM": "Jamaica",
	"CHE": "Switzerland",
	"BEL": "Belgium",
	"IDN": "Indonesia",
	"PER": "Peru",
	"SGP": "Singapore",
	"PRT": "Portugal",
	"HUN": "Hungary",
	"ROU": "Romania",
	"ARG": "Argentina",
	"ZAF": "South Africa",
	"PAN": "Panama",
	"EST": "Estonia",
	"LUX": "Luxembourg",
	"DZA": "Algeria",
	"EGY": "Egypt",
	"CHL": "Chile",
	"GRC": "Greece",
	"KEN": "Kenya",
	"COD": "Democratic Republic of the Congo",
	"SWE": "Sweden",
	"KOR": "South Korea",
	"TWN": "Taiwan",
	"NOR": "Norway",
	"CZE": "Czech Republic",
	"TUR": "Turkey",
	"NGA": "Nigeria",
	"CYP": "Cyprus",
	"COL": "Colombia",
	"DNK": "Denmark",
	"ARE": "United Arab Emirates",
	"BGR": "Bulgaria",
	"JOR": "Jordan",
	"SRB": "Serbia",
	"UKR": "Ukraine",
	"PRI": "Puerto Rico",
	"SLV": "El Salvador",
	"ECU": "Ecuador",
	"DOM": "Dominican Republic",
	"MYS": "Malaysia",
	"XKX": "Kosovo",
	"CRI": "Costa Rica",
	"ZMB": "Zambia",
	"ARM": "Armenia",
	"RWA": "Rwanda",
	"ISR": "Israel",
	"LBN": "Lebanon",
	"HRV": "Croatia",
	"PAK": "Pakistan",
	"HND": "Honduras",
	"VEN": "Venezuela",
	"BMU": "Bermuda",
	"VNM": "Vietnam",
	"GEO": "Georgia",
	"SAU": "Saudi Arabia",
	"OMN": "Oman",
	"BIH": "Bosnia and Herzegovina",
	"UGA": "Uganda",
	"MUS": "Mauritius",
	"THA": "Thailand",
	"QAT": "Qatar",
	"RUS": "Russia",
	"TUN": "Tunisia",
	"GHA": "Ghana",
	"AND": "Andorra",
	"MDA": "Moldova",
	"UZB": "Uzbekistan",
	"CAF": "Central African Republic",
	"KWT": "Kuwait",
	"IRN": "Iran",
	"ASM": "American Samoa",
	"CHN": "China",
	"BOL": "Bolivia",
	"IRQ": "Iraq",
	"JEY": "Jersey",
}

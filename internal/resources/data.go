package resources

import (
	"github.com/sanashahul/GamiSMS-sub000/internal/geo"
	"github.com/sanashahul/GamiSMS-sub000/internal/models"
)

// SampleClinics returns the bundled sample directory. Coordinates cluster
// around central Columbus, OH, where the pilot ran.
func SampleClinics() []models.Clinic {
	return []models.Clinic{
		{
			ID:      "heart-of-ohio",
			Name:    "Heart of Ohio Family Health",
			Address: "882 S Hamilton Rd",
			City:    "Columbus",
			ZipCode: "43213",
			Phone:   "(614) 235-5555",
			Areas:   []models.ServiceArea{models.AreaHealthcare},
			Services: []models.ClinicService{
				{Name: "Primary care", FreeOfCharge: false},
				{Name: "Refugee health screening", FreeOfCharge: true},
				{Name: "Vaccinations", FreeOfCharge: true},
			},
			Hours:          []models.OpeningHours{{Days: "Mon-Fri", Hours: "8:00-17:00"}},
			Languages:      []string{"en", "so", "ar"},
			AcceptsWalkIns: true,
			SlidingScale:   true,
			Latitude:       39.9512,
			Longitude:      -82.8781,
		},
		{
			ID:      "columbus-free-clinic",
			Name:    "Columbus Free Clinic",
			Address: "2231 N High St",
			City:    "Columbus",
			ZipCode: "43201",
			Phone:   "(614) 404-8417",
			Areas:   []models.ServiceArea{models.AreaHealthcare},
			Services: []models.ClinicService{
				{Name: "Walk-in primary care", FreeOfCharge: true},
				{Name: "Mental health counseling", FreeOfCharge: true},
			},
			Hours:          []models.OpeningHours{{Days: "Thu", Hours: "17:30-21:00"}},
			Languages:      []string{"en", "es"},
			AcceptsWalkIns: true,
			SlidingScale:   false,
			Latitude:       40.0076,
			Longitude:      -83.0092,
		},
		{
			ID:      "lower-lights",
			Name:    "Lower Lights Christian Health Center",
			Address: "1160 W Broad St",
			City:    "Columbus",
			ZipCode: "43222",
			Phone:   "(614) 274-1455",
			Areas:   []models.ServiceArea{models.AreaHealthcare},
			Services: []models.ClinicService{
				{Name: "Primary care", FreeOfCharge: false},
				{Name: "Dental", FreeOfCharge: false},
				{Name: "Pharmacy", FreeOfCharge: false},
			},
			Hours:          []models.OpeningHours{{Days: "Mon-Sat", Hours: "8:00-18:00"}},
			Languages:      []string{"en", "es", "fr"},
			AcceptsWalkIns: false,
			SlidingScale:   true,
			Latitude:       39.9577,
			Longitude:      -83.0353,
		},
		{
			ID:      "opportunity-center",
			Name:    "Westside Opportunity Center",
			Address: "1393 W Mound St",
			City:    "Columbus",
			ZipCode: "43223",
			Phone:   "(614) 545-2121",
			Areas:   []models.ServiceArea{models.AreaEmployment},
			Services: []models.ClinicService{
				{Name: "Resume workshops", FreeOfCharge: true},
				{Name: "Job placement", FreeOfCharge: true},
				{Name: "ESL classes", FreeOfCharge: true},
			},
			Hours:          []models.OpeningHours{{Days: "Mon-Fri", Hours: "9:00-17:00"}},
			Languages:      []string{"en", "es", "so"},
			AcceptsWalkIns: true,
			Latitude:       39.9479,
			Longitude:      -83.0262,
		},
		{
			ID:      "jewish-family-services",
			Name:    "Jewish Family Services Career Center",
			Address: "1070 College Ave",
			City:    "Columbus",
			ZipCode: "43209",
			Phone:   "(614) 231-1890",
			Areas:   []models.ServiceArea{models.AreaEmployment},
			Services: []models.ClinicService{
				{Name: "Refugee employment program", FreeOfCharge: true},
				{Name: "Skills training", FreeOfCharge: true},
			},
			Hours:     []models.OpeningHours{{Days: "Mon-Fri", Hours: "9:00-16:30"}},
			Languages: []string{"en", "uk", "ar"},
			Latitude:  39.9542,
			Longitude: -82.9296,
		},
		{
			ID:      "ymca-van-buren",
			Name:    "Van Buren Shelter",
			Address: "595 Van Buren Dr",
			City:    "Columbus",
			ZipCode: "43223",
			Phone:   "(614) 253-2770",
			Areas:   []models.ServiceArea{models.AreaHousing},
			Services: []models.ClinicService{
				{Name: "Emergency shelter", FreeOfCharge: true},
				{Name: "Housing case management", FreeOfCharge: true},
			},
			Hours:          []models.OpeningHours{{Days: "Daily", Hours: "24 hours"}},
			Languages:      []string{"en"},
			AcceptsWalkIns: true,
			Latitude:       39.9404,
			Longitude:      -83.0286,
		},
		{
			ID:      "chn-columbus",
			Name:    "Community Housing Network",
			Address: "1680 Watermark Dr",
			City:    "Columbus",
			ZipCode: "43215",
			Phone:   "(614) 221-8811",
			Areas:   []models.ServiceArea{models.AreaHousing},
			Services: []models.ClinicService{
				{Name: "Supportive housing", FreeOfCharge: false},
				{Name: "Rental assistance", FreeOfCharge: true},
			},
			Hours:     []models.OpeningHours{{Days: "Mon-Fri", Hours: "8:30-17:00"}},
			Languages: []string{"en"},
			Latitude:  39.9695,
			Longitude: -83.0422,
		},
	}
}

// SampleZipTable covers the ZIP codes of the bundled directory so manual ZIP
// entry works offline with the static geocoder.
func SampleZipTable() map[string]geo.Location {
	return map[string]geo.Location{
		"43201": {Coordinates: geo.Coordinates{Latitude: 39.9930, Longitude: -83.0050}, City: "Columbus", ZipCode: "43201"},
		"43209": {Coordinates: geo.Coordinates{Latitude: 39.9541, Longitude: -82.9296}, City: "Columbus", ZipCode: "43209"},
		"43213": {Coordinates: geo.Coordinates{Latitude: 39.9686, Longitude: -82.8678}, City: "Columbus", ZipCode: "43213"},
		"43215": {Coordinates: geo.Coordinates{Latitude: 39.9612, Longitude: -83.0007}, City: "Columbus", ZipCode: "43215"},
		"43222": {Coordinates: geo.Coordinates{Latitude: 39.9585, Longitude: -83.0357}, City: "Columbus", ZipCode: "43222"},
		"43223": {Coordinates: geo.Coordinates{Latitude: 39.9434, Longitude: -83.0418}, City: "Columbus", ZipCode: "43223"},
	}
}

package market

// Profile carries the stat blocks the profile screen renders. Farmer and
// buyer variants share the common fields; the role-specific ones are filled
// for one variant only.
type Profile struct {
	Location        string
	JoinDate        string
	Phone           string
	Email           string
	Rating          float64
	CompletedOrders int

	// Farmer fields
	FarmSize       string
	Crops          []string
	TotalSales     string
	Certifications []string

	// Buyer fields
	Company        string
	BusinessType   string
	TotalPurchases string
	Verifications  []string
}

// FarmerProfile returns the mock farmer profile stats.
func FarmerProfile() Profile {
	return Profile{
		Location:        "Guntur, Andhra Pradesh",
		JoinDate:        "January 2024",
		Phone:           "+91 98765 43210",
		Email:           "ramesh.kumar@email.com",
		Rating:          4.8,
		CompletedOrders: 47,
		FarmSize:        "15 acres",
		Crops:           []string{"Red Chilli", "Turmeric", "Cotton", "Rice"},
		TotalSales:      "₹2,45,000",
		Certifications:  []string{"Organic Farming", "Good Agricultural Practices"},
	}
}

// BuyerProfile returns the mock buyer profile stats.
func BuyerProfile() Profile {
	return Profile{
		Location:        "Hyderabad, Telangana",
		JoinDate:        "January 2024",
		Phone:           "+91 98765 43210",
		Email:           "buyer@agrifoods.com",
		Rating:          4.9,
		CompletedOrders: 23,
		Company:         "Agri Foods Ltd",
		BusinessType:    "Wholesale Trading",
		TotalPurchases:  "₹5,67,000",
		Verifications:   []string{"GST Verified", "Trade License", "Bank Verified"},
	}
}

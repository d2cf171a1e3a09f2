package request

// BinRequest is the body of a bin create or update
type BinRequest struct {
	Bin         string `json:"bin"`
	Locality    string `json:"locality"`
	Landmark    string `json:"landmark"`
	City        string `json:"city"`
	LoadType    string `json:"loadType"`
	DriverEmail string `json:"driverEmail"`
	CyclePeriod string `json:"cyclePeriod"`
	BestRoute   string `json:"bestRoute"`
}

// CreateComplaintRequest files a complaint. Date and time default to now.
type CreateComplaintRequest struct {
	BinArea   string `json:"binArea"`
	UserEmail string `json:"userEmail"`
	Complaint string `json:"complaint"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// UpdateComplaintStatusRequest moves a complaint to another status
type UpdateComplaintStatusRequest struct {
	Status string `json:"status"`
}

// CreateWorkRequest is a driver's report for an area
type CreateWorkRequest struct {
	Email  string `json:"email"`
	Area   string `json:"area"`
	Status string `json:"status"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

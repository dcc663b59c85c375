package dto

type AppointmentListDTO struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	PackageID    string `json:"package_id"`
	CustomerName string `json:"customer_name"`
	PackageName  string `json:"package_name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	ServiceType  string `json:"service_type"`
	Instructor   string `json:"instructor"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
}

package entity

// Vendor represents a supplier the organization buys from or quotes against.
// Vendors are loaded from the vendor directory file and addressed by name.
type Vendor struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email,omitempty"`
	GSTNo   string `json:"gst_no"`
	PANNo   string `json:"pan_no"`
	MSMENo  string `json:"msme_no"`
}

// EndUser represents the customer organization a document is addressed to.
type EndUser struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	ContactPerson string `json:"contact"`
	Mobile        string `json:"mobile"`
	Email         string `json:"email"`
	GSTNo         string `json:"gst_no"`
}

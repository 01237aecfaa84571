package schema

// CoreArtistTable represents the 'core.artist' table
type CoreArtistTable struct {
	Table         string
	ID            string
	FirstName     string
	MiddleName    string
	LastName      string
	Email         string
	ContactNumber string
	Status        string
	CreatedBy     string
	UpdatedBy     string
	CreatedDate   string
	UpdatedDate   string
}

// CoreArtist is the schema definition for core.artist
var CoreArtist = CoreArtistTable{
	Table:         "core.artist",
	ID:            "id",
	FirstName:     "firstname",
	MiddleName:    "middlename",
	LastName:      "lastname",
	Email:         "email",
	ContactNumber: "contactnumber",
	Status:        "status",
	CreatedBy:     "createdby",
	UpdatedBy:     "updatedby",
	CreatedDate:   "createddate",
	UpdatedDate:   "updateddate",
}

// Columns returns all column names in table order
func (t CoreArtistTable) Columns() []string {
	return []string{
		t.ID, t.FirstName, t.MiddleName, t.LastName, t.Email, t.ContactNumber,
		t.Status, t.CreatedBy, t.UpdatedBy, t.CreatedDate, t.UpdatedDate,
	}
}

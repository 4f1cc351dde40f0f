package portal

// Write payloads. Foreign references are always re-sent as {id: ...} stubs;
// embedded display copies in responses are never authoritative for writes.

type GradeInput struct {
	Student     Ref    `json:"student"`
	Subject     Ref    `json:"subject"`
	Value       int    `json:"value"`
	Description string `json:"description,omitempty"`
}

type LabTemplateInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Subject     Ref    `json:"subject"`
	MaxPoints   int    `json:"maxPoints"`
	OrderNumber int    `json:"orderNumber"`
}

type LabSubmissionInput struct {
	LabTemplate Ref    `json:"labTemplate"`
	Student     Ref    `json:"student"`
	Points      int    `json:"points"`
	Status      string `json:"status"`
	Comment     string `json:"comment,omitempty"`
}

// LabSubmissionGradeInput re-grades an existing submission.
type LabSubmissionGradeInput struct {
	Points  int    `json:"points"`
	Status  string `json:"status"`
	Comment string `json:"comment,omitempty"`
}

type AttendanceInput struct {
	Student Ref    `json:"student"`
	Subject Ref    `json:"subject"`
	Date    string `json:"date"`
	Present bool   `json:"present"`
	Note    string `json:"note,omitempty"`
}

type AttestationInput struct {
	Student Ref    `json:"student"`
	Subject Ref    `json:"subject"`
	Type    string `json:"type"`
	Passed  bool   `json:"passed"`
	Comment string `json:"comment,omitempty"`
}

type UserInput struct {
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"` // create only
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	// role-specific attributes
	StudentGroup string `json:"studentGroup,omitempty"`
	Department   string `json:"department,omitempty"`
}

type SubjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

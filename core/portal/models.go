package portal

import "time"

// Roles
const (
	RoleStudent = "STUDENT"
	RoleTeacher = "TEACHER"
	RoleAdmin   = "ADMIN"
)

var AllRoles = []string{RoleStudent, RoleTeacher, RoleAdmin}

// Lab submission statuses
const (
	StatusPending  = "PENDING"
	StatusGraded   = "GRADED"
	StatusRejected = "REJECTED"
)

// Attestation types
const (
	AttestationFirst  = "FIRST"
	AttestationSecond = "SECOND"
	AttestationFinal  = "FINAL"
)

// Ref is an id-only stub embedded in write payloads.
// Nested objects in responses are display copies; writes always re-send {id: ...}.
type Ref struct {
	ID int64 `json:"id"`
}

type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	// role-specific attributes
	StudentGroup string `json:"studentGroup,omitempty"`
	Department   string `json:"department,omitempty"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u User) IsStudent() bool { return u.Role == RoleStudent }
func (u User) IsTeacher() bool { return u.Role == RoleTeacher }
func (u User) IsAdmin() bool   { return u.Role == RoleAdmin }

type Subject struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type LabTemplate struct {
	ID          int64    `json:"id"`
	Subject     *Subject `json:"subject,omitempty"`
	OrderNumber int      `json:"orderNumber"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	MaxPoints   int      `json:"maxPoints"`
}

type LabSubmission struct {
	ID          int64        `json:"id"`
	LabTemplate *LabTemplate `json:"labTemplate,omitempty"`
	Student     *User        `json:"student,omitempty"`
	Points      int          `json:"points"`
	Status      string       `json:"status"`
	Comment     string       `json:"comment,omitempty"`
	SubmittedAt *time.Time   `json:"submittedAt,omitempty"`
	GradedAt    *time.Time   `json:"gradedAt,omitempty"`
}

type Grade struct {
	ID          int64      `json:"id"`
	Student     *User      `json:"student,omitempty"`
	Subject     *Subject   `json:"subject,omitempty"`
	Value       int        `json:"value"`
	Description string     `json:"description,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

type Attendance struct {
	ID      int64    `json:"id"`
	Student *User    `json:"student,omitempty"`
	Subject *Subject `json:"subject,omitempty"`
	Date    string   `json:"date"` // calendar date, YYYY-MM-DD
	Present bool     `json:"present"`
	Note    string   `json:"note,omitempty"`
}

type Attestation struct {
	ID        int64      `json:"id"`
	Student   *User      `json:"student,omitempty"`
	Subject   *Subject   `json:"subject,omitempty"`
	Type      string     `json:"type"`
	Passed    bool       `json:"passed"`
	Comment   string     `json:"comment,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// DashboardStats is the server-computed aggregate payload for the student view.
type DashboardStats struct {
	AverageGrade      float64       `json:"averageGrade"`
	CompletedLabs     int           `json:"completedLabs"`
	TotalLabs         int           `json:"totalLabs"`
	EarnedPoints      int           `json:"earnedPoints"`
	MaxPossiblePoints int           `json:"maxPossiblePoints"`
	AttendanceRate    float64       `json:"attendanceRate"`
	Attestations      []Attestation `json:"attestations"`
	RecentGrades      []Grade       `json:"recentGrades"`
}

// Identity is the authenticated user persisted for the session.
type Identity struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	UserID    int64  `json:"userId"`
}

func (id Identity) FullName() string {
	return id.FirstName + " " + id.LastName
}

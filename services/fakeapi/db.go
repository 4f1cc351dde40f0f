package fakeapi

import (
	"sort"
	"sync"

	"github.com/scut1er/studentportal/core/portal"
)

// DB is the in-memory state behind the fake backend. It mimics the real
// service's persistence only as far as the HTTP contract can observe it.
type DB struct {
	mu sync.RWMutex
	pk int64

	users           map[int64]*portal.User
	passwords       map[int64][]byte // bcrypt hashes by user id
	subjects        map[int64]*portal.Subject
	teacherSubjects map[int64]map[int64]bool // teacher id -> subject ids
	labTemplates    map[int64]*portal.LabTemplate
	labSubmissions  map[int64]*portal.LabSubmission
	grades          map[int64]*portal.Grade
	attendance      map[int64]*portal.Attendance
	attestations    map[int64]*portal.Attestation
}

func OpenDB() *DB {
	return &DB{
		users:           make(map[int64]*portal.User),
		passwords:       make(map[int64][]byte),
		subjects:        make(map[int64]*portal.Subject),
		teacherSubjects: make(map[int64]map[int64]bool),
		labTemplates:    make(map[int64]*portal.LabTemplate),
		labSubmissions:  make(map[int64]*portal.LabSubmission),
		grades:          make(map[int64]*portal.Grade),
		attendance:      make(map[int64]*portal.Attendance),
		attestations:    make(map[int64]*portal.Attestation),
	}
}

func (db *DB) nextPK() int64 {
	db.pk++
	return db.pk
}

// Users

func (db *DB) createUser(usr portal.User, pwdHash []byte) portal.User {
	db.mu.Lock()
	defer db.mu.Unlock()

	usr.ID = db.nextPK()
	db.users[usr.ID] = &usr
	db.passwords[usr.ID] = pwdHash
	return usr
}

func (db *DB) userByEmail(email string) (portal.User, []byte, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, usr := range db.users {
		if usr.Email == email {
			return *usr, db.passwords[usr.ID], true
		}
	}
	return portal.User{}, nil, false
}

func (db *DB) userByID(id int64) (portal.User, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if usr, ok := db.users[id]; ok {
		return *usr, true
	}
	return portal.User{}, false
}

func (db *DB) usersByRole(role string) []portal.User {
	db.mu.RLock()
	defer db.mu.RUnlock()

	users := make([]portal.User, 0)
	for _, usr := range db.users {
		if usr.Role == role {
			users = append(users, *usr)
		}
	}
	sortUsers(users)
	return users
}

func (db *DB) allUsers() []portal.User {
	db.mu.RLock()
	defer db.mu.RUnlock()

	users := make([]portal.User, 0, len(db.users))
	for _, usr := range db.users {
		users = append(users, *usr)
	}
	sortUsers(users)
	return users
}

func (db *DB) updateUser(id int64, input portal.UserInput) (portal.User, bool) {
	db.mu.Lock()
	defer db.mu.Unlock()

	usr, ok := db.users[id]
	if !ok {
		return portal.User{}, false
	}
	usr.Email = input.Email
	usr.FirstName = input.FirstName
	usr.LastName = input.LastName
	usr.Role = input.Role
	usr.StudentGroup = input.StudentGroup
	usr.Department = input.Department
	return *usr, true
}

func (db *DB) deleteUser(id int64) {
	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.users, id)
	delete(db.passwords, id)
	delete(db.teacherSubjects, id)
}

func sortUsers(users []portal.User) {
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
}

// Subjects

func (db *DB) createSubject(sub portal.Subject) portal.Subject {
	db.mu.Lock()
	defer db.mu.Unlock()

	sub.ID = db.nextPK()
	db.subjects[sub.ID] = &sub
	return sub
}

func (db *DB) subjectByID(id int64) (portal.Subject, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if sub, ok := db.subjects[id]; ok {
		return *sub, true
	}
	return portal.Subject{}, false
}

func (db *DB) allSubjects() []portal.Subject {
	db.mu.RLock()
	defer db.mu.RUnlock()

	subjects := make([]portal.Subject, 0, len(db.subjects))
	for _, sub := range db.subjects {
		subjects = append(subjects, *sub)
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].ID < subjects[j].ID })
	return subjects
}

func (db *DB) updateSubject(id int64, input portal.SubjectInput) (portal.Subject, bool) {
	db.mu.Lock()
	defer db.mu.Unlock()

	sub, ok := db.subjects[id]
	if !ok {
		return portal.Subject{}, false
	}
	sub.Name = input.Name
	sub.Description = input.Description
	return *sub, true
}

func (db *DB) deleteSubject(id int64) {
	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.subjects, id)
	for _, subs := range db.teacherSubjects {
		delete(subs, id)
	}
}

// Teacher-subject subscriptions

// subscribe is idempotent, as in the real backend.
func (db *DB) subscribe(teacherID, subjectID int64) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.teacherSubjects[teacherID] == nil {
		db.teacherSubjects[teacherID] = make(map[int64]bool)
	}
	db.teacherSubjects[teacherID][subjectID] = true
}

func (db *DB) unsubscribe(teacherID, subjectID int64) {
	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.teacherSubjects[teacherID], subjectID)
}

func (db *DB) subjectsByTeacher(teacherID int64) []portal.Subject {
	db.mu.RLock()
	defer db.mu.RUnlock()

	subjects := make([]portal.Subject, 0)
	for subjectID := range db.teacherSubjects[teacherID] {
		if sub, ok := db.subjects[subjectID]; ok {
			subjects = append(subjects, *sub)
		}
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].ID < subjects[j].ID })
	return subjects
}

// Lab templates

func (db *DB) saveLabTemplate(tpl portal.LabTemplate) portal.LabTemplate {
	db.mu.Lock()
	defer db.mu.Unlock()

	if tpl.ID == 0 {
		tpl.ID = db.nextPK()
	}
	db.labTemplates[tpl.ID] = &tpl
	return tpl
}

func (db *DB) labTemplateByID(id int64) (portal.LabTemplate, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if tpl, ok := db.labTemplates[id]; ok {
		return *tpl, true
	}
	return portal.LabTemplate{}, false
}

func (db *DB) queryLabTemplates(filter func(portal.LabTemplate) bool) []portal.LabTemplate {
	db.mu.RLock()
	defer db.mu.RUnlock()

	templates := make([]portal.LabTemplate, 0)
	for _, tpl := range db.labTemplates {
		if filter == nil || filter(*tpl) {
			templates = append(templates, *tpl)
		}
	}
	// curriculum order, as the real list endpoints return it
	sort.Slice(templates, func(i, j int) bool { return templates[i].OrderNumber < templates[j].OrderNumber })
	return templates
}

func (db *DB) deleteLabTemplate(id int64) {
	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.labTemplates, id)
}

// Lab submissions

func (db *DB) saveLabSubmission(sub portal.LabSubmission) portal.LabSubmission {
	db.mu.Lock()
	defer db.mu.Unlock()

	if sub.ID == 0 {
		sub.ID = db.nextPK()
	}
	db.labSubmissions[sub.ID] = &sub
	return sub
}

func (db *DB) labSubmissionByID(id int64) (portal.LabSubmission, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if sub, ok := db.labSubmissions[id]; ok {
		return *sub, true
	}
	return portal.LabSubmission{}, false
}

func (db *DB) queryLabSubmissions(filter func(portal.LabSubmission) bool) []portal.LabSubmission {
	db.mu.RLock()
	defer db.mu.RUnlock()

	submissions := make([]portal.LabSubmission, 0)
	for _, sub := range db.labSubmissions {
		if filter == nil || filter(*sub) {
			submissions = append(submissions, *sub)
		}
	}
	sort.Slice(submissions, func(i, j int) bool { return submissions[i].ID < submissions[j].ID })
	return submissions
}

func (db *DB) deleteLabSubmission(id int64) {
	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.labSubmissions, id)
}

// Grades

func (db *DB) saveGrade(grade portal.Grade) portal.Grade {
	db.mu.Lock()
	defer db.mu.Unlock()

	if grade.ID == 0 {
		grade.ID = db.nextPK()
	}
	db.grades[grade.ID] = &grade
	return grade
}

func (db *DB) gradeByID(id int64) (portal.Grade, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if grade, ok := db.grades[id]; ok {
		return *grade, true
	}
	return portal.Grade{}, false
}

func (db *DB) queryGrades(filter func(portal.Grade) bool) []portal.Grade {
	db.mu.RLock()
	defer db.mu.RUnlock()

	grades := make([]portal.Grade, 0)
	for _, grade := range db.grades {
		if filter == nil || filter(*grade) {
			grades = append(grades, *grade)
		}
	}
	sort.Slice(grades, func(i, j int) bool { return grades[i].ID < grades[j].ID })
	return grades
}

func (db *DB) deleteGrade(id int64) {
	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.grades, id)
}

// Attendance

func (db *DB) saveAttendance(att portal.Attendance) portal.Attendance {
	db.mu.Lock()
	defer db.mu.Unlock()

	if att.ID == 0 {
		att.ID = db.nextPK()
	}
	db.attendance[att.ID] = &att
	return att
}

func (db *DB) queryAttendance(filter func(portal.Attendance) bool) []portal.Attendance {
	db.mu.RLock()
	defer db.mu.RUnlock()

	records := make([]portal.Attendance, 0)
	for _, att := range db.attendance {
		if filter == nil || filter(*att) {
			records = append(records, *att)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records
}

func (db *DB) attendanceByID(id int64) (portal.Attendance, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if att, ok := db.attendance[id]; ok {
		return *att, true
	}
	return portal.Attendance{}, false
}

func (db *DB) deleteAttendance(id int64) {
	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.attendance, id)
}

// Attestations

func (db *DB) saveAttestation(att portal.Attestation) portal.Attestation {
	db.mu.Lock()
	defer db.mu.Unlock()

	if att.ID == 0 {
		att.ID = db.nextPK()
	}
	db.attestations[att.ID] = &att
	return att
}

func (db *DB) attestationByID(id int64) (portal.Attestation, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if att, ok := db.attestations[id]; ok {
		return *att, true
	}
	return portal.Attestation{}, false
}

func (db *DB) queryAttestations(filter func(portal.Attestation) bool) []portal.Attestation {
	db.mu.RLock()
	defer db.mu.RUnlock()

	records := make([]portal.Attestation, 0)
	for _, att := range db.attestations {
		if filter == nil || filter(*att) {
			records = append(records, *att)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records
}

func (db *DB) deleteAttestation(id int64) {
	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.attestations, id)
}

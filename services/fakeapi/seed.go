package fakeapi

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/scut1er/studentportal/core/portal"
)

func mustHash(pwd string) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return hash
}

// SeedDemo populates db with the demo accounts and a small but complete
// data set covering every record type.
//
// Accounts: student@example.com / student123, teacher@example.com / teacher123,
// admin@example.com / admin123.
func SeedDemo(db *DB) {
	student := db.createUser(portal.User{
		Email:        "student@example.com",
		FirstName:    "Ivan",
		LastName:     "Petrov",
		Role:         portal.RoleStudent,
		StudentGroup: "CS-301",
	}, mustHash("student123"))

	student2 := db.createUser(portal.User{
		Email:        "maria@example.com",
		FirstName:    "Maria",
		LastName:     "Sidorova",
		Role:         portal.RoleStudent,
		StudentGroup: "CS-301",
	}, mustHash("student123"))

	teacher := db.createUser(portal.User{
		Email:      "teacher@example.com",
		FirstName:  "Elena",
		LastName:   "Volkova",
		Role:       portal.RoleTeacher,
		Department: "Computer Science",
	}, mustHash("teacher123"))

	db.createUser(portal.User{
		Email:     "admin@example.com",
		FirstName: "Site",
		LastName:  "Admin",
		Role:      portal.RoleAdmin,
	}, mustHash("admin123"))

	algo := db.createSubject(portal.Subject{
		Name:        "Algorithms",
		Description: "Design and analysis of algorithms",
	})
	nets := db.createSubject(portal.Subject{
		Name:        "Computer Networks",
		Description: "Protocols, routing and transport",
	})
	db.createSubject(portal.Subject{
		Name:        "Databases",
		Description: "Relational modeling and SQL",
	})

	db.subscribe(teacher.ID, algo.ID)
	db.subscribe(teacher.ID, nets.ID)

	lab1 := db.saveLabTemplate(portal.LabTemplate{
		Subject:     &algo,
		OrderNumber: 1,
		Title:       "Sorting",
		Description: "Implement and benchmark three sorting algorithms",
		MaxPoints:   10,
	})
	lab2 := db.saveLabTemplate(portal.LabTemplate{
		Subject:     &algo,
		OrderNumber: 2,
		Title:       "Graph traversal",
		Description: "BFS and DFS over an adjacency list",
		MaxPoints:   15,
	})
	db.saveLabTemplate(portal.LabTemplate{
		Subject:     &nets,
		OrderNumber: 1,
		Title:       "Socket echo server",
		MaxPoints:   10,
	})

	week := func(n int) *time.Time {
		t := time.Now().UTC().AddDate(0, 0, -7*n)
		return &t
	}

	db.saveLabSubmission(portal.LabSubmission{
		LabTemplate: &lab1,
		Student:     &student,
		Points:      9,
		Status:      portal.StatusGraded,
		Comment:     "Clean work",
		SubmittedAt: week(3),
		GradedAt:    week(2),
	})
	db.saveLabSubmission(portal.LabSubmission{
		LabTemplate: &lab2,
		Student:     &student,
		Status:      portal.StatusPending,
		SubmittedAt: week(1),
	})
	db.saveLabSubmission(portal.LabSubmission{
		LabTemplate: &lab1,
		Student:     &student2,
		Points:      6,
		Status:      portal.StatusGraded,
		SubmittedAt: week(3),
		GradedAt:    week(2),
	})

	for i, v := range []int{5, 4, 5, 3, 4, 5} {
		db.saveGrade(portal.Grade{
			Student:     &student,
			Subject:     &algo,
			Value:       v,
			Description: "Seminar work",
			CreatedAt:   week(6 - i),
		})
	}

	for i := 0; i < 8; i++ {
		db.saveAttendance(portal.Attendance{
			Student: &student,
			Subject: &algo,
			Date:    time.Now().UTC().AddDate(0, 0, -7*i).Format("2006-01-02"),
			Present: i%4 != 3,
		})
	}

	db.saveAttestation(portal.Attestation{
		Student:   &student,
		Subject:   &algo,
		Type:      portal.AttestationFirst,
		Passed:    true,
		CreatedAt: week(4),
	})
	db.saveAttestation(portal.Attestation{
		Student:   &student,
		Subject:   &nets,
		Type:      portal.AttestationFirst,
		Passed:    false,
		Comment:   "Missed the control work",
		CreatedAt: week(4),
	})
}

package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/scut1er/studentportal/core/portal"
	"github.com/scut1er/studentportal/core/student"
)

func ctx() context.Context { return context.Background() }

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func (cli *commandLine) studentView() {
	identity := cli.session.Current()
	dash := student.NewDashboard(cli.api, cli.log, identity.UserID)
	dash.Refresh(ctx())
	printStudentStats(dash.Stats())

	for {
		cmd, _, ok := cli.prompt("student")
		if !ok {
			return
		}
		switch cmd {
		case "":
		case "dashboard":
			dash.Refresh(ctx())
			printStudentStats(dash.Stats())
		case "grades":
			printGrades(dash.Grades())
		case "labs":
			printSubmissions(dash.Labs())
		case "attendance":
			printAttendance(dash.Attendance())
		case "attestations":
			printAttestations(dash.Attestations())
		case "teachers":
			printUsers(dash.Teachers())
		case "logout":
			cli.logout()
			return
		case "help":
			fmt.Println("commands: dashboard grades labs attendance attestations teachers logout")
		default:
			fmt.Println("unknown command; try help")
		}
	}
}

func printStudentStats(stats portal.DashboardStats) {
	fmt.Printf("average grade: %.2f\n", stats.AverageGrade)
	fmt.Printf("labs: %d/%d completed, %d/%d points\n",
		stats.CompletedLabs, stats.TotalLabs, stats.EarnedPoints, stats.MaxPossiblePoints)
	fmt.Printf("attendance: %.1f%%\n", stats.AttendanceRate)
	if len(stats.RecentGrades) > 0 {
		fmt.Println("recent grades:")
		printGrades(stats.RecentGrades)
	}
}

func printGrades(grades []portal.Grade) {
	w := newTable()
	fmt.Fprintln(w, "ID\tSTUDENT\tSUBJECT\tVALUE\tDESCRIPTION")
	for _, g := range grades {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", g.ID, userName(g.Student), subjectName(g.Subject), g.Value, g.Description)
	}
	w.Flush()
}

func printSubmissions(subs []portal.LabSubmission) {
	w := newTable()
	fmt.Fprintln(w, "ID\tLAB\tSTUDENT\tPOINTS\tMAX\tSTATUS")
	for _, s := range subs {
		title, max := "", 0
		if s.LabTemplate != nil {
			title, max = s.LabTemplate.Title, s.LabTemplate.MaxPoints
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\n", s.ID, title, userName(s.Student), s.Points, max, s.Status)
	}
	w.Flush()
}

func printAttendance(records []portal.Attendance) {
	w := newTable()
	fmt.Fprintln(w, "ID\tSTUDENT\tSUBJECT\tDATE\tPRESENT\tNOTE")
	for _, a := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\t%s\n", a.ID, userName(a.Student), subjectName(a.Subject), a.Date, a.Present, a.Note)
	}
	w.Flush()
}

func printAttestations(records []portal.Attestation) {
	w := newTable()
	fmt.Fprintln(w, "ID\tSTUDENT\tSUBJECT\tTYPE\tPASSED\tCOMMENT")
	for _, a := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\t%s\n", a.ID, userName(a.Student), subjectName(a.Subject), a.Type, a.Passed, a.Comment)
	}
	w.Flush()
}

func printUsers(users []portal.User) {
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tGROUP/DEPT")
	for _, u := range users {
		extra := u.StudentGroup
		if extra == "" {
			extra = u.Department
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.FullName(), u.Email, u.Role, extra)
	}
	w.Flush()
}

func printSubjects(subjects []portal.Subject) {
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
	for _, s := range subjects {
		fmt.Fprintf(w, "%d\t%s\t%s\n", s.ID, s.Name, s.Description)
	}
	w.Flush()
}

func printTemplates(templates []portal.LabTemplate) {
	w := newTable()
	fmt.Fprintln(w, "ID\t#\tTITLE\tMAX\tSUBJECT")
	for _, t := range templates {
		fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%s\n", t.ID, t.OrderNumber, t.Title, t.MaxPoints, subjectName(t.Subject))
	}
	w.Flush()
}

func userName(u *portal.User) string {
	if u == nil {
		return ""
	}
	return u.FullName()
}

func subjectName(s *portal.Subject) string {
	if s == nil {
		return ""
	}
	return s.Name
}

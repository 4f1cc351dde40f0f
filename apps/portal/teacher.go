package main

import (
	"fmt"
	"strconv"

	"github.com/scut1er/studentportal/core/teacher"
)

func (cli *commandLine) teacherView() {
	identity := cli.session.Current()
	dash := teacher.NewDashboard(cli.api, cli.log, identity.UserID)
	if err := dash.Refresh(ctx()); err != nil {
		fmt.Println("load failed:", apiErrMessage(err))
	}
	printTeacherStats(dash)

	for {
		cmd, arg, ok := cli.prompt("teacher")
		if !ok {
			return
		}
		switch cmd {
		case "":
		case "stats":
			if err := dash.Refresh(ctx()); err != nil {
				fmt.Println("load failed:", apiErrMessage(err))
				continue
			}
			printTeacherStats(dash)
		case "students":
			printUsers(dash.Roster())
		case "subjects":
			printSubjects(dash.Catalog())
		case "my":
			printSubjects(dash.MySubjects())
		case "subscribe":
			cli.withID(arg, func(id int64) error { return dash.Subscribe(ctx(), id) })
		case "unsubscribe":
			cli.withID(arg, func(id int64) error { return dash.Unsubscribe(ctx(), id) })
		case "select":
			cli.withID(arg, func(id int64) error { return dash.SelectSubject(ctx(), id) })
		case "templates":
			if !dash.TabEnabled(teacher.TabLabTemplates) {
				fmt.Println("select a subject first")
				continue
			}
			printTemplates(dash.LabTemplates())
		case "submissions":
			if !dash.TabEnabled(teacher.TabLabSubmissions) {
				fmt.Println("select a subject first")
				continue
			}
			printSubmissions(dash.LabSubmissions())
		case "grades":
			if !dash.TabEnabled(teacher.TabGrades) {
				fmt.Println("select a subject first")
				continue
			}
			printGrades(dash.Grades())
		case "attendance":
			if !dash.TabEnabled(teacher.TabAttendance) {
				fmt.Println("select a subject first")
				continue
			}
			printAttendance(dash.Attendance())
		case "attestations":
			if !dash.TabEnabled(teacher.TabAttestations) {
				fmt.Println("select a subject first")
				continue
			}
			printAttestations(dash.Attestations())
		case "addtemplate":
			cli.addTemplate(dash)
		case "addgrade":
			cli.addGrade(dash)
		case "addsubmission":
			cli.addSubmission(dash)
		case "gradesub":
			cli.gradeSubmission(dash, arg)
		case "logout":
			cli.logout()
			return
		case "help":
			fmt.Println("commands: stats students subjects my subscribe <id> unsubscribe <id> select <id>")
			fmt.Println("          templates submissions grades attendance attestations")
			fmt.Println("          addtemplate addgrade addsubmission gradesub <id> logout")
		default:
			fmt.Println("unknown command; try help")
		}
	}
}

func (cli *commandLine) withID(arg string, fn func(int64) error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Println("an id argument is required")
		return
	}
	if err := fn(id); err != nil {
		fmt.Println("failed:", apiErrMessage(err))
	}
}

// Editor flows. Each prompts its fields, then submits through the dashboard;
// a validation failure is printed and nothing is sent.

func (cli *commandLine) ask(label string) string {
	fmt.Printf("%s: ", label)
	if !cli.in.Scan() {
		return ""
	}
	return cli.in.Text()
}

func (cli *commandLine) askInt(label string) int {
	n, _ := strconv.Atoi(cli.ask(label))
	return n
}

func (cli *commandLine) askID(label string) int64 {
	n, _ := strconv.ParseInt(cli.ask(label), 10, 64)
	return n
}

func (cli *commandLine) addTemplate(dash *teacher.Dashboard) {
	form := teacher.LabTemplateCreateForm{
		Title:       cli.ask("title"),
		Description: cli.ask("description"),
		MaxPoints:   cli.askInt("max points"),
		OrderNumber: cli.askInt("order number"),
	}
	if err := dash.CreateLabTemplate(ctx(), form); err != nil {
		fmt.Println("failed:", apiErrMessage(err))
	}
}

func (cli *commandLine) addGrade(dash *teacher.Dashboard) {
	form := teacher.GradeCreateForm{
		StudentID:   cli.askID("student id"),
		Value:       cli.askInt("value (2-5)"),
		Description: cli.ask("description"),
	}
	if err := dash.CreateGrade(ctx(), form); err != nil {
		fmt.Println("failed:", apiErrMessage(err))
	}
}

func (cli *commandLine) addSubmission(dash *teacher.Dashboard) {
	form := teacher.LabSubmissionCreateForm{
		LabTemplateID: cli.askID("lab template id"),
		StudentID:     cli.askID("student id"),
		Points:        cli.askInt("points"),
		Comment:       cli.ask("comment"),
	}
	if err := dash.CreateLabSubmission(ctx(), form); err != nil {
		fmt.Println("failed:", apiErrMessage(err))
	}
}

func (cli *commandLine) gradeSubmission(dash *teacher.Dashboard, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Println("an id argument is required")
		return
	}
	form := teacher.LabSubmissionGradeForm{
		ID:      id,
		Points:  cli.askInt("points"),
		Status:  cli.ask("status (PENDING/GRADED/REJECTED)"),
		Comment: cli.ask("comment"),
	}
	if err := dash.GradeLabSubmission(ctx(), form); err != nil {
		fmt.Println("failed:", apiErrMessage(err))
	}
}

func printTeacherStats(dash *teacher.Dashboard) {
	stats := dash.Stats()
	fmt.Printf("students: %d, my subjects: %d, lab templates: %d, pending submissions: %d, attested: %.1f%%\n",
		stats.Students, stats.SubscribedSubjects, stats.TemplateCount, stats.PendingSubmissions, stats.AttestedRate*100)
	if selected := dash.Selected(); selected != nil {
		fmt.Println("selected subject:", selected.Name)
	}
}

package main

import (
	"fmt"
	"syscall"

	"github.com/scut1er/studentportal/core/admin"
)

func (cli *commandLine) adminView() {
	dash := admin.NewDashboard(cli.api, cli.log)

	open := func(tab admin.Tab) bool {
		if err := dash.OpenTab(ctx(), tab); err != nil {
			fmt.Println("load failed:", apiErrMessage(err))
			return false
		}
		return true
	}

	for {
		cmd, arg, ok := cli.prompt("admin")
		if !ok {
			return
		}
		switch cmd {
		case "":
		case "users":
			if open(admin.TabUsers) {
				printUsers(dash.Users())
			}
		case "subjects":
			if open(admin.TabSubjects) {
				printSubjects(dash.Subjects())
			}
		case "grades":
			if open(admin.TabGrades) {
				printGrades(dash.Grades())
			}
		case "templates":
			if open(admin.TabLabTemplates) {
				printTemplates(dash.LabTemplates())
			}
		case "submissions":
			if open(admin.TabLabSubmissions) {
				printSubmissions(dash.LabSubmissions())
			}
		case "attendance":
			if open(admin.TabAttendance) {
				printAttendance(dash.Attendance())
			}
		case "attestations":
			if open(admin.TabAttestations) {
				printAttestations(dash.Attestations())
			}
		case "adduser":
			cli.addUser(dash)
		case "edituser":
			cli.withID(arg, func(id int64) error { return cli.editUser(dash, id) })
		case "addsubject":
			cli.addSubject(dash)
		case "deluser":
			cli.withID(arg, func(id int64) error { return dash.DeleteUser(ctx(), id) })
		case "delsubject":
			cli.withID(arg, func(id int64) error { return dash.DeleteSubject(ctx(), id) })
		case "delgrade":
			cli.withID(arg, func(id int64) error { return dash.DeleteGrade(ctx(), id) })
		case "deltemplate":
			cli.withID(arg, func(id int64) error { return dash.DeleteLabTemplate(ctx(), id) })
		case "delsubmission":
			cli.withID(arg, func(id int64) error { return dash.DeleteLabSubmission(ctx(), id) })
		case "delattendance":
			cli.withID(arg, func(id int64) error { return dash.DeleteAttendance(ctx(), id) })
		case "delattestation":
			cli.withID(arg, func(id int64) error { return dash.DeleteAttestation(ctx(), id) })
		case "logout":
			cli.logout()
			return
		case "help":
			fmt.Println("commands: users subjects grades templates submissions attendance attestations")
			fmt.Println("          adduser edituser <id> addsubject")
			fmt.Println("          deluser|delsubject|delgrade|deltemplate|delsubmission|delattendance|delattestation <id> logout")
		default:
			fmt.Println("unknown command; try help")
		}
	}
}

// Editor flows. The password prompt exists only on create.

func (cli *commandLine) addUser(dash *admin.Dashboard) {
	form := admin.UserCreateForm{Email: cli.ask("email")}
	fmt.Print("password: ")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		fmt.Println("failed:", err)
		return
	}
	form.Password = string(pwd)
	form.FirstName = cli.ask("first name")
	form.LastName = cli.ask("last name")
	form.Role = cli.ask("role (STUDENT/TEACHER/ADMIN)")
	switch form.Role {
	case "STUDENT":
		form.StudentGroup = cli.ask("student group")
	case "TEACHER":
		form.Department = cli.ask("department")
	}
	if err := dash.CreateUser(ctx(), form); err != nil {
		fmt.Println("failed:", apiErrMessage(err))
	}
}

func (cli *commandLine) editUser(dash *admin.Dashboard, id int64) error {
	form := admin.UserUpdateForm{
		ID:        id,
		Email:     cli.ask("email"),
		FirstName: cli.ask("first name"),
		LastName:  cli.ask("last name"),
		Role:      cli.ask("role (STUDENT/TEACHER/ADMIN)"),
	}
	switch form.Role {
	case "STUDENT":
		form.StudentGroup = cli.ask("student group")
	case "TEACHER":
		form.Department = cli.ask("department")
	}
	return dash.UpdateUser(ctx(), form)
}

func (cli *commandLine) addSubject(dash *admin.Dashboard) {
	form := admin.SubjectCreateForm{
		Name:        cli.ask("name"),
		Description: cli.ask("description"),
	}
	if err := dash.CreateSubject(ctx(), form); err != nil {
		fmt.Println("failed:", apiErrMessage(err))
	}
}

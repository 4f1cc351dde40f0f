package teacher

import (
	"github.com/scut1er/studentportal/core"
	"github.com/scut1er/studentportal/core/portal"
)

// Editor forms. One struct per entity and operation; update forms carry the
// target id explicitly instead of dispatching on its presence in a shared map.
// The subject is never a form field: subject-scoped writes always embed the
// dashboard's current selection.

type GradeCreateForm struct {
	StudentID   int64  `json:"student" validate:"required"`
	Value       int    `json:"value" validate:"required,gte=2,lte=5"`
	Description string `json:"description"`
}

type GradeUpdateForm struct {
	ID int64 `json:"id" validate:"required"`
	GradeCreateForm
}

type LabTemplateCreateForm struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	MaxPoints   int    `json:"maxPoints" validate:"required,gte=1"`
	OrderNumber int    `json:"orderNumber" validate:"required,gte=1"`
}

type LabTemplateUpdateForm struct {
	ID int64 `json:"id" validate:"required"`
	LabTemplateCreateForm
}

// LabSubmissionCreateForm records an already graded submission; the dashboard
// forces status GRADED on submit.
type LabSubmissionCreateForm struct {
	LabTemplateID int64  `json:"labTemplate" validate:"required"`
	StudentID     int64  `json:"student" validate:"required"`
	Points        int    `json:"points" validate:"gte=0"`
	Comment       string `json:"comment"`
}

type LabSubmissionGradeForm struct {
	ID      int64  `json:"id" validate:"required"`
	Points  int    `json:"points" validate:"gte=0"`
	Status  string `json:"status" validate:"required,oneof=PENDING GRADED REJECTED"`
	Comment string `json:"comment"`
}

type AttendanceCreateForm struct {
	StudentID int64  `json:"student" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Present   bool   `json:"present"`
	Note      string `json:"note"`
}

type AttendanceUpdateForm struct {
	ID int64 `json:"id" validate:"required"`
	AttendanceCreateForm
}

type AttestationCreateForm struct {
	StudentID int64  `json:"student" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=FIRST SECOND FINAL"`
	Passed    bool   `json:"passed"`
	Comment   string `json:"comment"`
}

type AttestationUpdateForm struct {
	ID int64 `json:"id" validate:"required"`
	AttestationCreateForm
}

func validateForm(form interface{}) error {
	if err := core.Validate.Struct(form); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return nil
}

func (f GradeCreateForm) input(subjectID int64) portal.GradeInput {
	return portal.GradeInput{
		Student:     portal.Ref{ID: f.StudentID},
		Subject:     portal.Ref{ID: subjectID},
		Value:       f.Value,
		Description: f.Description,
	}
}

func (f LabTemplateCreateForm) input(subjectID int64) portal.LabTemplateInput {
	return portal.LabTemplateInput{
		Title:       f.Title,
		Description: f.Description,
		Subject:     portal.Ref{ID: subjectID},
		MaxPoints:   f.MaxPoints,
		OrderNumber: f.OrderNumber,
	}
}

func (f AttendanceCreateForm) input(subjectID int64) portal.AttendanceInput {
	return portal.AttendanceInput{
		Student: portal.Ref{ID: f.StudentID},
		Subject: portal.Ref{ID: subjectID},
		Date:    f.Date,
		Present: f.Present,
		Note:    f.Note,
	}
}

func (f AttestationCreateForm) input(subjectID int64) portal.AttestationInput {
	return portal.AttestationInput{
		Student: portal.Ref{ID: f.StudentID},
		Subject: portal.Ref{ID: subjectID},
		Type:    f.Type,
		Passed:  f.Passed,
		Comment: f.Comment,
	}
}

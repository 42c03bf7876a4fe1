package lecturer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nandraak/siakad/internal/controller"
	"github.com/nandraak/siakad/internal/dto"
	"github.com/nandraak/siakad/internal/service"
	"github.com/rs/zerolog/log"
)

// AssignmentController is the lecturer surface: assignment CRUD, grading
// and the per-assignment recap.
type AssignmentController struct {
	assignmentService service.AssignmentService
	gradingService    service.GradingService
	feedbackService   service.FeedbackService
	transcriptService service.TranscriptService
}

func NewAssignmentController(
	assignmentService service.AssignmentService,
	gradingService service.GradingService,
	feedbackService service.FeedbackService,
	transcriptService service.TranscriptService,
) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
		gradingService:    gradingService,
		feedbackService:   feedbackService,
		transcriptService: transcriptService,
	}
}

// CreateAssignment godoc
// @Summary (Dosen) Create an assignment
// @Description Creates an assignment and dispatches a "new assignment" notice to students.
// @Tags Dosen - Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assignment body dto.AssignmentUpsertRequest true "Assignment data"
// @Success 201 {object} dto.AssignmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /dosen/assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	var req dto.AssignmentUpsertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.assignmentService.Create(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("CreateAssignment: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateAssignment godoc
// @Summary (Dosen) Edit an assignment
// @Description Replaces title, description, deadline and attachment. Recorded lateness on existing submissions is untouched.
// @Tags Dosen - Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assignment_id path string true "Assignment ID"
// @Param assignment body dto.AssignmentUpsertRequest true "Assignment data"
// @Success 200 {object} dto.AssignmentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /dosen/assignments/{assignment_id} [put]
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	var req dto.AssignmentUpsertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.assignmentService.Update(ctx.Request.Context(), ctx.Param("assignment_id"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteAssignment godoc
// @Summary (Dosen) Delete an assignment
// @Description Idempotent. Submissions for the assignment are not cascaded.
// @Tags Dosen - Assignments
// @Produce json
// @Security BearerAuth
// @Param assignment_id path string true "Assignment ID"
// @Success 204 "Deleted"
// @Router /dosen/assignments/{assignment_id} [delete]
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	if err := c.assignmentService.Delete(ctx.Request.Context(), ctx.Param("assignment_id")); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListAssignments godoc
// @Summary (Dosen) List assignments with submissions and recap
// @Description Most-recently-created first; each entry carries its submissions and, once anything is scored, the grade recap.
// @Tags Dosen - Assignments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AssignmentDetailResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /dosen/assignments [get]
func (c *AssignmentController) ListAssignments(ctx *gin.Context) {
	resp, err := c.assignmentService.ListDetailed(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("ListAssignments: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GradeSubmission godoc
// @Summary (Dosen) Record a grade on a submission
// @Tags Dosen - Grading
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assignment_id path string true "Assignment ID"
// @Param student_id path string true "Student NIM"
// @Param grade body dto.GradeRequest true "Score and optional comment"
// @Success 204 "Grade recorded"
// @Failure 400 {object} dto.ErrorResponse "Non-finite or missing score"
// @Failure 404 {object} dto.ErrorResponse "No submission for the pair"
// @Router /dosen/assignments/{assignment_id}/submissions/{student_id}/grade [post]
func (c *AssignmentController) GradeSubmission(ctx *gin.Context) {
	var req dto.GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	err := c.gradingService.RecordGrade(ctx.Request.Context(), ctx.Param("assignment_id"), ctx.Param("student_id"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// SummarizeAssignment godoc
// @Summary (Dosen) Grade recap for one assignment
// @Description 404 until at least one submission carries a score; zero is a grade, absence is not.
// @Tags Dosen - Grading
// @Produce json
// @Security BearerAuth
// @Param assignment_id path string true "Assignment ID"
// @Success 200 {object} dto.GradeSummary
// @Failure 404 {object} dto.ErrorResponse "Nothing scored yet"
// @Router /dosen/assignments/{assignment_id}/summary [get]
func (c *AssignmentController) SummarizeAssignment(ctx *gin.Context) {
	summary, err := c.gradingService.Summarize(ctx.Request.Context(), ctx.Param("assignment_id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	if summary == nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No scored submissions yet"})
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// DraftFeedback godoc
// @Summary (Dosen) Draft a feedback comment for a submission
// @Description AI-assisted suggestion; the lecturer edits and submits it through the grading endpoint.
// @Tags Dosen - Grading
// @Produce json
// @Security BearerAuth
// @Param assignment_id path string true "Assignment ID"
// @Param student_id path string true "Student NIM"
// @Success 200 {object} dto.FeedbackDraftResponse
// @Failure 400 {object} dto.ErrorResponse "Assistant not configured"
// @Failure 404 {object} dto.ErrorResponse
// @Router /dosen/assignments/{assignment_id}/submissions/{student_id}/feedback-draft [get]
func (c *AssignmentController) DraftFeedback(ctx *gin.Context) {
	assignmentID := ctx.Param("assignment_id")
	studentID := ctx.Param("student_id")

	draft, err := c.feedbackService.DraftComment(ctx.Request.Context(), assignmentID, studentID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FeedbackDraftResponse{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		Draft:        draft,
	})
}

// PutTranscript godoc
// @Summary (Dosen) Replace a student's KHS rows
// @Tags Dosen - Transcript
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param nim path string true "Student NIM"
// @Param transcript body dto.TranscriptPutRequest true "Transcript rows"
// @Success 204 "Stored"
// @Failure 400 {object} dto.ErrorResponse
// @Router /dosen/students/{nim}/transcript [put]
func (c *AssignmentController) PutTranscript(ctx *gin.Context) {
	var req dto.TranscriptPutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.transcriptService.Put(ctx.Request.Context(), ctx.Param("nim"), req); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

package student

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nandraak/siakad/internal/controller"
	"github.com/nandraak/siakad/internal/dto"
	"github.com/nandraak/siakad/internal/middleware"
	"github.com/nandraak/siakad/internal/service"
	"github.com/rs/zerolog/log"
)

// AssignmentController is the student surface: the assignment board,
// submission upload/withdraw, the KHS transcript and the notice feed. The
// student identity always comes from the token, never from the request.
type AssignmentController struct {
	submissionService service.SubmissionService
	transcriptService service.TranscriptService
	noticeService     service.NoticeService
}

func NewAssignmentController(
	submissionService service.SubmissionService,
	transcriptService service.TranscriptService,
	noticeService service.NoticeService,
) *AssignmentController {
	return &AssignmentController{
		submissionService: submissionService,
		transcriptService: transcriptService,
		noticeService:     noticeService,
	}
}

// ListAssignments godoc
// @Summary (Mahasiswa) List assignments with own submission status
// @Tags Mahasiswa - Assignments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.StudentAssignmentView
// @Failure 503 {object} dto.ErrorResponse
// @Router /mahasiswa/assignments [get]
func (c *AssignmentController) ListAssignments(ctx *gin.Context) {
	nim := ctx.GetString(middleware.CtxNIM)
	views, err := c.submissionService.ListForStudent(ctx.Request.Context(), nim)
	if err != nil {
		log.Error().Err(err).Str("nim", nim).Msg("ListAssignments: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, views)
}

// UploadSubmission godoc
// @Summary (Mahasiswa) Upload or replace a submission
// @Description Upsert by (assignment, student): a second upload replaces the first. Lateness is recorded against the deadline at upload time.
// @Tags Mahasiswa - Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assignment_id path string true "Assignment ID"
// @Param submission body dto.SubmissionUploadRequest true "Answer file reference"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown assignment"
// @Router /mahasiswa/assignments/{assignment_id}/submission [post]
func (c *AssignmentController) UploadSubmission(ctx *gin.Context) {
	var req dto.SubmissionUploadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	nim := ctx.GetString(middleware.CtxNIM)
	name := ctx.GetString(middleware.CtxName)
	resp, err := c.submissionService.Upload(ctx.Request.Context(), ctx.Param("assignment_id"), nim, name, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteSubmission godoc
// @Summary (Mahasiswa) Withdraw a submission
// @Description Idempotent.
// @Tags Mahasiswa - Assignments
// @Produce json
// @Security BearerAuth
// @Param assignment_id path string true "Assignment ID"
// @Success 204 "Withdrawn"
// @Router /mahasiswa/assignments/{assignment_id}/submission [delete]
func (c *AssignmentController) DeleteSubmission(ctx *gin.Context) {
	nim := ctx.GetString(middleware.CtxNIM)
	if err := c.submissionService.Delete(ctx.Request.Context(), ctx.Param("assignment_id"), nim); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetTranscript godoc
// @Summary (Mahasiswa) Own KHS with semester IP
// @Tags Mahasiswa - Transcript
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TranscriptResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /mahasiswa/transcript [get]
func (c *AssignmentController) GetTranscript(ctx *gin.Context) {
	nim := ctx.GetString(middleware.CtxNIM)
	resp, err := c.transcriptService.Get(ctx.Request.Context(), nim)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListNotices godoc
// @Summary (Mahasiswa) Notice feed, newest first
// @Tags Mahasiswa - Notices
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.NoticeResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /mahasiswa/notices [get]
func (c *AssignmentController) ListNotices(ctx *gin.Context) {
	resp, err := c.noticeService.List(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

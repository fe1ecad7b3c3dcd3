package v1

import (
	"net/http"
	"strconv"

	"go-talent-session/internal/delivery/http/response"
	"go-talent-session/internal/domain"
	"go-talent-session/internal/usecase"
	"go-talent-session/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const defaultTopLimit = 5

type JobHandler struct {
	registry *usecase.SessionRegistry
}

func NewJobHandler(protected *gin.RouterGroup, registry *usecase.SessionRegistry) {
	handler := &JobHandler{registry: registry}

	jobs := protected.Group("/jobs")
	{
		jobs.POST("", handler.Create)
		jobs.POST("/:jobId/close", handler.Close)
		jobs.POST("/:jobId/apply", handler.Apply)
		jobs.GET("/:jobId/applicants", handler.Applicants)
		jobs.PATCH("/:jobId/applicants/:userId", handler.UpdateStatus)
		jobs.POST("/:jobId/rescore", handler.Rescore)
		jobs.GET("/:jobId/top-candidates", handler.TopCandidates)
		jobs.DELETE("/:jobId/view", handler.Release)
	}
}

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Location    string `json:"location" binding:"required"`
	SalaryRange string `json:"salaryRange"`
}

type ApplyRequest struct {
	ResumeURL  string `json:"resumeUrl" binding:"required"`
	Attachment string `json:"additionalAttachment"`
}

type UpdateStatusRequest struct {
	Status domain.ApplicantStatus `json:"status" binding:"required"`
}

type RescoreResponse struct {
	Updated    int                   `json:"updated"`
	Applicants *domain.ApplicantList `json:"applicants,omitempty"`
}

// Create godoc
// @Summary      Create a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Location:    req.Location,
		SalaryRange: req.SalaryRange,
	}
	if err := stores.Applicants.CreateJob(c.Request.Context(), job); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created", job)
}

// Close godoc
// @Summary      Close a job
// @Tags         jobs
// @Produce      json
// @Param        jobId  path      string  true  "Job ID"
// @Success      200    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /jobs/{jobId}/close [post]
// @Security     BearerAuth
func (h *JobHandler) Close(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}
	if err := stores.Applicants.CloseJob(c.Request.Context(), c.Param("jobId")); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job closed", nil)
}

// Apply godoc
// @Summary      Apply to a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        jobId        path      string        true  "Job ID"
// @Param        application  body      ApplyRequest  true  "Application JSON"
// @Success      201          {object}  response.Response
// @Failure      422          {object}  response.Response
// @Router       /jobs/{jobId}/apply [post]
// @Security     BearerAuth
func (h *JobHandler) Apply(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app := domain.Application{ResumeURL: req.ResumeURL, Attachment: req.Attachment}
	if err := stores.Applicants.Apply(c.Request.Context(), c.Param("jobId"), app); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", nil)
}

// Applicants godoc
// @Summary      Applicant roster
// @Description  Reloads the canonical roster of a job, one entry per user.
// @Tags         jobs
// @Produce      json
// @Param        jobId  path      string  true  "Job ID"
// @Success      200    {object}  response.Response{data=domain.ApplicantList}
// @Failure      404    {object}  response.Response
// @Router       /jobs/{jobId}/applicants [get]
// @Security     BearerAuth
func (h *JobHandler) Applicants(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}
	list, err := stores.Applicants.FetchApplicants(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applicants retrieved", list)
}

// UpdateStatus godoc
// @Summary      Accept or reject an applicant
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        jobId   path      string               true  "Job ID"
// @Param        userId  path      string               true  "Applicant user ID"
// @Param        status  body      UpdateStatusRequest  true  "New status"
// @Success      200     {object}  response.Response{data=domain.ApplicantList}
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      422     {object}  response.Response
// @Router       /jobs/{jobId}/applicants/{userId} [patch]
// @Security     BearerAuth
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest(err.Error()))
		return
	}

	jobID := c.Param("jobId")
	if err := stores.Applicants.UpdateStatus(c.Request.Context(), jobID, c.Param("userId"), req.Status); err != nil {
		_ = c.Error(err)
		return
	}
	list, _ := stores.Applicants.Current(jobID)
	response.Success(c, http.StatusOK, "Applicant status updated", list)
}

// Rescore godoc
// @Summary      Rescore applicants
// @Description  Recomputes every applicant's score and reloads the roster.
// @Tags         jobs
// @Produce      json
// @Param        jobId  path      string  true  "Job ID"
// @Success      200    {object}  response.Response{data=RescoreResponse}
// @Failure      502    {object}  response.Response
// @Router       /jobs/{jobId}/rescore [post]
// @Security     BearerAuth
func (h *JobHandler) Rescore(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}

	jobID := c.Param("jobId")
	updated, err := stores.Applicants.Rescore(c.Request.Context(), jobID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	list, _ := stores.Applicants.Current(jobID)
	response.Success(c, http.StatusOK, "Applicants rescored", RescoreResponse{Updated: updated, Applicants: list})
}

// TopCandidates godoc
// @Summary      Top candidates
// @Description  At most limit applicants by descending score.
// @Tags         jobs
// @Produce      json
// @Param        jobId  path      string  true   "Job ID"
// @Param        limit  query     int     false  "Maximum entries (default 5)"
// @Success      200    {object}  response.Response{data=domain.ApplicantList}
// @Failure      422    {object}  response.Response
// @Router       /jobs/{jobId}/top-candidates [get]
// @Security     BearerAuth
func (h *JobHandler) TopCandidates(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultTopLimit)))
	if err != nil {
		_ = c.Error(apperror.BadRequest("limit must be a number"))
		return
	}

	list, err := stores.Applicants.TopCandidates(c.Request.Context(), c.Param("jobId"), limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Top candidates retrieved", list)
}

// Release godoc
// @Summary      Leave the applicants view
// @Description  Drops the cached list of a job; responses still in flight for it are discarded.
// @Tags         jobs
// @Produce      json
// @Param        jobId  path      string  true  "Job ID"
// @Success      200    {object}  response.Response
// @Router       /jobs/{jobId}/view [delete]
// @Security     BearerAuth
func (h *JobHandler) Release(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}
	stores.Applicants.Release(c.Param("jobId"))
	response.Success(c, http.StatusOK, "View released", nil)
}

package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts every endpoint under api.
func RegisterRoutes(api *gin.RouterGroup, jobs *JobHandler, resumes *ResumeHandler, editors *EditorHandler) {
	api.GET("/health", HealthCheck)

	// Job Routes
	api.GET("/jobs", jobs.ListJobs)
	api.GET("/jobs/yet-to-apply", jobs.ListYetToApply)
	api.POST("/jobs", jobs.CreateJob)
	api.GET("/jobs/:id", jobs.GetJob)
	api.PATCH("/jobs/:id", jobs.UpdateJob)
	api.DELETE("/jobs/:id", jobs.DeleteJob)
	api.GET("/jobs/:id/events", jobs.ListEvents)

	// Resume Routes
	api.GET("/resume/master", resumes.GetMaster)
	api.PUT("/resume/master", resumes.SaveMaster)
	api.GET("/resume/master/structure", resumes.MasterStructure)
	api.POST("/resume/tailored", resumes.Tailor)
	api.GET("/resume/tailored/by-company/:company", resumes.ListByCompany)
	api.GET("/resume/tailored/:id", resumes.GetTailored)
	api.PATCH("/resume/tailored/:id", resumes.UpdateTailored)
	api.DELETE("/resume/tailored/:id", resumes.DeleteTailored)
	api.GET("/resume/tailored/:id/structure", resumes.TailoredStructure)

	RegisterEditorRoutes(api, editors)
}

func RegisterEditorRoutes(api *gin.RouterGroup, editors *EditorHandler) {
	api.POST("/editor/sessions", editors.OpenSession)
	api.GET("/editor/sessions/:id", editors.GetSession)
	api.PUT("/editor/sessions/:id/text", editors.SetText)
	api.POST("/editor/sessions/:id/edits", editors.ApplyEdit)
	api.PUT("/editor/sessions/:id/selection", editors.Select)
	api.DELETE("/editor/sessions/:id", editors.CloseSession)
}

package routes

import (
	"github.com/anjiri1684/course_platform/handlers"
	"github.com/anjiri1684/course_platform/middleware"
	"github.com/gofiber/fiber/v2"
)

func CourseRoutes(app *fiber.App) {
	courses := app.Group("/api/v1/courses", middleware.Protected())

	courses.Post("", middleware.InstructorRequired(), handlers.CreateCourse)
	courses.Get("", handlers.ListCourses)
	courses.Get("/:courseId", handlers.GetCourse)
	courses.Put("/:courseId", middleware.InstructorRequired(), handlers.UpdateCourse)
	courses.Delete("/:courseId", middleware.InstructorRequired(), handlers.DeleteCourse)

	courses.Post("/:courseId/modules", middleware.InstructorRequired(), handlers.AddCourseModule)
	courses.Delete("/:courseId/modules/:moduleId", middleware.InstructorRequired(), handlers.DeleteCourseModule)

	courses.Post("/:courseId/enroll", handlers.EnrollInCourse)
	courses.Delete("/:courseId/enroll", handlers.Unenroll)

	app.Get("/api/v1/enrollments/my-enrollments", middleware.Protected(), handlers.ListMyEnrollments)
}

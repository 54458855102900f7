package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"schoolbook/internal/api/handlers"
	"schoolbook/internal/payment"
	"schoolbook/internal/record"
)

// Deps carries everything the router needs.
type Deps struct {
	Records        *record.Service
	Sessions       payment.SessionCreator
	AllowedOrigins []string
}

// NewRouter configures the chi router, middleware, and route handlers.
func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	studentHandler := &handlers.StudentHandler{Records: deps.Records}
	academicsHandler := &handlers.AcademicsHandler{Records: deps.Records}
	broadcastHandler := &handlers.BroadcastHandler{Records: deps.Records}
	billingHandler := &handlers.BillingHandler{Records: deps.Records, Sessions: deps.Sessions}

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Hello From Server"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/students", studentHandler.CreateStudent)
	r.Get("/students", studentHandler.ListStudents)
	r.Delete("/students/{id}", studentHandler.DeleteStudent)

	r.Post("/entermarks", academicsHandler.EnterMarks)
	r.Get("/entermarks", academicsHandler.ListMarks)
	r.Post("/enterattendance", academicsHandler.RecordAttendance)
	r.Post("/addhomework", academicsHandler.AddHomework)
	r.Get("/allhomework", academicsHandler.AllHomework)

	r.Post("/addexam", broadcastHandler.AddExam)
	r.Get("/getallexams", broadcastHandler.AllExams)
	r.Post("/addtecher", broadcastHandler.AddTeacher)
	r.Get("/getalltecher", broadcastHandler.TeacherLists)
	r.Post("/techersalary", broadcastHandler.AddTeacherSalary)
	r.Get("/getalltechersalary", broadcastHandler.SalaryLists)

	r.Post("/addbilling", billingHandler.AddBilling)
	r.Get("/getallbilling", billingHandler.BillingLists)
	r.Post("/billing", billingHandler.CreateSession)

	return r
}

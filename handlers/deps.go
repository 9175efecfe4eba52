package handlers

import (
	adminuserRepo "lightfield/database/repository/adminuser"
	associateRepo "lightfield/database/repository/associate"
	blogRepo "lightfield/database/repository/blog"
	categoryRepo "lightfield/database/repository/category"
	contactRepo "lightfield/database/repository/contact"
	consultationRepo "lightfield/database/repository/consultation"
	conversationRepo "lightfield/database/repository/conversation"
	grantRepo "lightfield/database/repository/grant"
	testimonialRepo "lightfield/database/repository/testimonial"
	"lightfield/services/booking"
	"lightfield/services/solo"
	"lightfield/services/storage"
)

// Shared handler dependencies, wired once at startup from main.
var (
	AssociateRepo    associateRepo.AssociateRepository
	CategoryRepo     categoryRepo.CategoryRepository
	BlogRepo         blogRepo.BlogRepository
	TestimonialRepo  testimonialRepo.TestimonialRepository
	GrantRepo        grantRepo.GrantRepository
	ContactRepo      contactRepo.ContactRepository
	ServiceRepo      consultationRepo.ServiceRepository
	BookingRepo      consultationRepo.BookingRepository
	ConversationRepo conversationRepo.ConversationRepository
	AdminRepo        adminuserRepo.AdminUserRepository

	BookingService *booking.Service
	SoloService    *solo.Service
	Gemini         *solo.GeminiClient
	Storage        storage.StorageService

	// EnqueueOverview schedules background AI overview generation for a post.
	// Nil when the queue is disabled.
	EnqueueOverview func(blogID string)
)

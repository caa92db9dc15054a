package router

import (
	"github.com/oksasatya/library-management-api/internal/application"
	"github.com/oksasatya/library-management-api/internal/container"
	pginfra "github.com/oksasatya/library-management-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/library-management-api/internal/interface/http"
	"github.com/oksasatya/library-management-api/internal/router/modules"
)

// InitModules wires repositories, services, and handlers for every feature
// module and registers them with the router registry. Called once during
// startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	userRepo := pginfra.NewUserRepository(pool)
	categoryRepo := pginfra.NewCategoryRepository(pool)
	bookRepo := pginfra.NewBookRepository(pool)
	loanRepo := pginfra.NewLoanRepository(pool)

	authSvc := application.NewAuthService(userRepo, jwt, logger)
	userSvc := application.NewUserService(userRepo, logger)
	categorySvc := application.NewCategoryService(categoryRepo, logger)
	bookSvc := application.NewBookService(bookRepo, logger)
	loanSvc := application.NewLoanService(loanRepo, bookRepo, userRepo, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), authSvc, jwt))
	r.Add(modules.NewUsersModule(handlers.NewUserHandler(userSvc, logger), authSvc, jwt))
	r.Add(modules.NewCategoriesModule(handlers.NewCategoryHandler(categorySvc, logger), authSvc, jwt))
	r.Add(modules.NewBooksModule(handlers.NewBookHandler(bookSvc, logger), authSvc, jwt))
	r.Add(modules.NewLoansModule(handlers.NewLoanHandler(loanSvc, logger), authSvc, jwt))
}

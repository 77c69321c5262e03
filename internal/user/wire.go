//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"

	"github.com/neonshop/commerce-core/internal/storage"
	"github.com/neonshop/commerce-core/internal/user/domain"
	"github.com/neonshop/commerce-core/internal/user/repository"
	"github.com/neonshop/commerce-core/internal/user/usecase/command"
	"github.com/neonshop/commerce-core/internal/user/usecase/query"
)

// ProvideUserRepository provides the file-backed user repository.
func ProvideUserRepository(store storage.Store) (domain.UserRepository, error) {
	return repository.NewFileUserRepository(store)
}

// CommandHandlers holds all user command handlers.
type CommandHandlers struct {
	RegisterHandler             *command.RegisterUserHandler
	LoginHandler                *command.LoginUserHandler
	UpdateHandler               *command.UpdateUserHandler
	DeleteHandler               *command.DeleteUserHandler
	ChangeRoleHandler           *command.ChangeRoleHandler
	ToggleActiveHandler         *command.ToggleActiveHandler
	VerifyEmailHandler          *command.VerifyEmailHandler
	RequestPasswordResetHandler *command.RequestPasswordResetHandler
	ResetPasswordHandler        *command.ResetPasswordHandler
	AddAddressHandler           *command.AddAddressHandler
	UpdateAddressHandler        *command.UpdateAddressHandler
	RemoveAddressHandler        *command.RemoveAddressHandler
	SetPrimaryAddressHandler    *command.SetPrimaryAddressHandler
	UpdatePreferencesHandler    *command.UpdatePreferencesHandler
}

// QueryHandlers holds all user query handlers.
type QueryHandlers struct {
	GetHandler   *query.GetUserHandler
	ListHandler  *query.ListUsersHandler
	StatsHandler *query.GetStatsHandler
}

// ProvideCommandHandlers bundles the command handlers.
func ProvideCommandHandlers(
	registerHandler *command.RegisterUserHandler,
	loginHandler *command.LoginUserHandler,
	updateHandler *command.UpdateUserHandler,
	deleteHandler *command.DeleteUserHandler,
	changeRoleHandler *command.ChangeRoleHandler,
	toggleActiveHandler *command.ToggleActiveHandler,
	verifyEmailHandler *command.VerifyEmailHandler,
	requestPasswordResetHandler *command.RequestPasswordResetHandler,
	resetPasswordHandler *command.ResetPasswordHandler,
	addAddressHandler *command.AddAddressHandler,
	updateAddressHandler *command.UpdateAddressHandler,
	removeAddressHandler *command.RemoveAddressHandler,
	setPrimaryAddressHandler *command.SetPrimaryAddressHandler,
	updatePreferencesHandler *command.UpdatePreferencesHandler,
) *CommandHandlers {
	return &CommandHandlers{
		RegisterHandler:             registerHandler,
		LoginHandler:                loginHandler,
		UpdateHandler:               updateHandler,
		DeleteHandler:               deleteHandler,
		ChangeRoleHandler:           changeRoleHandler,
		ToggleActiveHandler:         toggleActiveHandler,
		VerifyEmailHandler:          verifyEmailHandler,
		RequestPasswordResetHandler: requestPasswordResetHandler,
		ResetPasswordHandler:        resetPasswordHandler,
		AddAddressHandler:           addAddressHandler,
		UpdateAddressHandler:        updateAddressHandler,
		RemoveAddressHandler:        removeAddressHandler,
		SetPrimaryAddressHandler:    setPrimaryAddressHandler,
		UpdatePreferencesHandler:    updatePreferencesHandler,
	}
}

// ProvideQueryHandlers bundles the query handlers.
func ProvideQueryHandlers(
	getHandler *query.GetUserHandler,
	listHandler *query.ListUsersHandler,
	statsHandler *query.GetStatsHandler,
) *QueryHandlers {
	return &QueryHandlers{
		GetHandler:   getHandler,
		ListHandler:  listHandler,
		StatsHandler: statsHandler,
	}
}

// Handlers is the full user handler set.
type Handlers struct {
	Commands *CommandHandlers
	Queries  *QueryHandlers
}

// ProvideHandlers bundles both handler sets.
func ProvideHandlers(commands *CommandHandlers, queries *QueryHandlers) *Handlers {
	return &Handlers{Commands: commands, Queries: queries}
}

// Wire sets.
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)

var CommandHandlerSet = wire.NewSet(
	command.NewRegisterUserHandler,
	command.NewLoginUserHandler,
	command.NewUpdateUserHandler,
	command.NewDeleteUserHandler,
	command.NewChangeRoleHandler,
	command.NewToggleActiveHandler,
	command.NewVerifyEmailHandler,
	command.NewRequestPasswordResetHandler,
	command.NewResetPasswordHandler,
	command.NewAddAddressHandler,
	command.NewUpdateAddressHandler,
	command.NewRemoveAddressHandler,
	command.NewSetPrimaryAddressHandler,
	command.NewUpdatePreferencesHandler,
	ProvideCommandHandlers,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetUserHandler,
	query.NewListUsersHandler,
	query.NewGetStatsHandler,
	ProvideQueryHandlers,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
	ProvideHandlers,
)

// InitializeHandlers builds the user handler set over a store.
func InitializeHandlers(store storage.Store) (*Handlers, error) {
	wire.Build(AllHandlersSet)
	return nil, nil
}

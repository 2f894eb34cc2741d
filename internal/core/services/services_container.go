package services

import (
	portsrepo "github.com/Oost-hash/Budget-sub001/internal/core/ports/repositories"
	portssvc "github.com/Oost-hash/Budget-sub001/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo, repos.TransactionRepo),
		Group:       NewGroupService(repos.GroupRepo),
		Category:    NewCategoryService(repos.CategoryRepo, repos.GroupRepo, repos.TransactionRepo),
		Payee:       NewPayeeService(repos.PayeeRepo, repos.RuleRepo, repos.TransactionRepo),
		Rule:        NewRuleService(repos.RuleRepo, repos.PayeeRepo, repos.CategoryRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.PayeeRepo, repos.CategoryRepo),
	}
}

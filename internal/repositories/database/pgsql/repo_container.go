package pgsql

import (
	portsrepo "github.com/Oost-hash/Budget-sub001/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		GroupRepo:       newPgxGroupRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		PayeeRepo:       newPgxPayeeRepository(dbPool),
		RuleRepo:        newPgxRuleRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
	}
}

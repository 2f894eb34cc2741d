package services_test

import (
	"context"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	portsrepo "github.com/Oost-hash/Budget-sub001/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) ExistsByIBAN(ctx context.Context, iban string, excludeID string) (bool, error) {
	args := m.Called(ctx, iban, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Mock GroupRepository ---

type MockGroupRepository struct {
	mock.Mock
}

var _ portsrepo.GroupRepositoryFacade = (*MockGroupRepository)(nil)

func (m *MockGroupRepository) FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockGroupRepository) ListGroups(ctx context.Context) ([]domain.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}

func (m *MockGroupRepository) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGroupRepository) SaveGroup(ctx context.Context, group domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) UpdateGroup(ctx context.Context, group domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) DeleteGroup(ctx context.Context, groupID string) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

// --- Mock CategoryRepository ---

type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByGroupID(ctx context.Context, groupID string) ([]domain.Category, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindWithoutGroup(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ExistsByNameInGroup(ctx context.Context, name string, groupID *string, excludeID string) (bool, error) {
	args := m.Called(ctx, name, groupID, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) CountByGroup(ctx context.Context, groupID *string) (int, error) {
	args := m.Called(ctx, groupID)
	return args.Int(0), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Mock PayeeRepository ---

type MockPayeeRepository struct {
	mock.Mock
}

var _ portsrepo.PayeeRepositoryFacade = (*MockPayeeRepository)(nil)

func (m *MockPayeeRepository) FindPayeeByID(ctx context.Context, payeeID string) (*domain.Payee, error) {
	args := m.Called(ctx, payeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payee), args.Error(1)
}

func (m *MockPayeeRepository) ListPayees(ctx context.Context) ([]domain.Payee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payee), args.Error(1)
}

func (m *MockPayeeRepository) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPayeeRepository) ExistsByIBAN(ctx context.Context, iban string, excludeID string) (bool, error) {
	args := m.Called(ctx, iban, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPayeeRepository) SavePayee(ctx context.Context, payee domain.Payee) error {
	args := m.Called(ctx, payee)
	return args.Error(0)
}

func (m *MockPayeeRepository) UpdatePayee(ctx context.Context, payee domain.Payee) error {
	args := m.Called(ctx, payee)
	return args.Error(0)
}

func (m *MockPayeeRepository) DeletePayee(ctx context.Context, payeeID string) error {
	args := m.Called(ctx, payeeID)
	return args.Error(0)
}

// --- Mock RuleRepository ---

type MockRuleRepository struct {
	mock.Mock
}

var _ portsrepo.RuleRepositoryFacade = (*MockRuleRepository)(nil)

func (m *MockRuleRepository) FindRuleByID(ctx context.Context, ruleID string) (*domain.Rule, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rule), args.Error(1)
}

func (m *MockRuleRepository) ListRules(ctx context.Context) ([]domain.Rule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rule), args.Error(1)
}

func (m *MockRuleRepository) FindByPayeeID(ctx context.Context, payeeID string) ([]domain.Rule, error) {
	args := m.Called(ctx, payeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rule), args.Error(1)
}

func (m *MockRuleRepository) FindRecurring(ctx context.Context) ([]domain.Rule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rule), args.Error(1)
}

func (m *MockRuleRepository) SaveRule(ctx context.Context, rule domain.Rule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockRuleRepository) UpdateRule(ctx context.Context, rule domain.Rule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockRuleRepository) DeleteRule(ctx context.Context, ruleID string) error {
	args := m.Called(ctx, ruleID)
	return args.Error(0)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) HasTransactionsForPayee(ctx context.Context, payeeID string) (bool, error) {
	args := m.Called(ctx, payeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) HasTransactionsForCategory(ctx context.Context, categoryID string) (bool, error) {
	args := m.Called(ctx, categoryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) HasEntriesForAccount(ctx context.Context, accountID string) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

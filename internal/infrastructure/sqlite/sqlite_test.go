package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dosedata/dose-certa/internal/domain"
	"github.com/dosedata/dose-certa/internal/domain/entity"
	"github.com/dosedata/dose-certa/internal/infrastructure/sqlite"
	"github.com/dosedata/dose-certa/pkg/config"
	"github.com/dosedata/dose-certa/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

// newTestStore abre um banco temporário com o schema pronto.
func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dose_certa_test.db")
	store, err := sqlite.Open(config.StoreConfig{Path: path}, logger.Nop())
	require.NoError(t, err, "deve abrir o banco de teste")
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.InitSchema(context.Background()))
	return store
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Schema
// ──────────────────────────────────────────────────────────────────────────────

// Reexecutar InitSchema N vezes produz o mesmo conjunto de tabelas que uma vez.
func TestInitSchema_Idempotente(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	countTables := func() int {
		var n int
		err := store.DB().QueryRow(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`,
		).Scan(&n)
		require.NoError(t, err)
		return n
	}

	first := countTables()
	require.Equal(t, 13, first, "o schema completo tem 13 tabelas")

	require.NoError(t, store.InitSchema(ctx))
	require.NoError(t, store.InitSchema(ctx))
	assert.Equal(t, first, countTables())
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuários
// ──────────────────────────────────────────────────────────────────────────────

func TestUserRepo_CreateEDuplicado(t *testing.T) {
	store := newTestStore(t)
	repo := sqlite.NewUserRepository(store, logger.Nop())

	u := &entity.User{Name: "Alice", Email: "alice@bar.com", PasswordHash: "x", WhatsApp: ptr("11988887777")}
	require.NoError(t, repo.Create(u))
	assert.NotZero(t, u.ID)

	// Segundo insert com o mesmo e-mail: condição benigna, uma única linha.
	err := repo.Create(&entity.User{Name: "Outra", Email: "alice@bar.com", PasswordHash: "y"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestUserRepo_FindByEmail(t *testing.T) {
	store := newTestStore(t)
	repo := sqlite.NewUserRepository(store, logger.Nop())

	// Não encontrado não é falha.
	missing, err := repo.FindByEmail("ninguem@bar.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Create(&entity.User{Name: "Alice", Email: "alice@bar.com", PasswordHash: "h"}))
	found, err := repo.FindByEmail("alice@bar.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Alice", found.Name)
	assert.Equal(t, "h", found.PasswordHash)
	assert.False(t, found.CreatedAt.IsZero(), "criado_em deve ser preenchido pelo banco")
}

func TestUserRepo_HasNonDefault(t *testing.T) {
	store := newTestStore(t)
	repo := sqlite.NewUserRepository(store, logger.Nop())
	const seedEmail = "admin@dosedata.com"

	has, err := repo.HasNonDefault(seedEmail)
	require.NoError(t, err)
	assert.False(t, has, "banco vazio não tem usuário real")

	require.NoError(t, repo.Create(&entity.User{Name: "Admin", Email: seedEmail, PasswordHash: "h"}))
	has, err = repo.HasNonDefault(seedEmail)
	require.NoError(t, err)
	assert.False(t, has, "a conta seed não conta como usuário real")

	require.NoError(t, repo.Create(&entity.User{Name: "Alice", Email: "alice@bar.com", PasswordHash: "h"}))
	has, err = repo.HasNonDefault(seedEmail)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestUserRepo_UpdateNameESenha(t *testing.T) {
	store := newTestStore(t)
	repo := sqlite.NewUserRepository(store, logger.Nop())

	u := &entity.User{Name: "Admin Padrão", Email: "admin@dosedata.com", PasswordHash: "antigo"}
	require.NoError(t, repo.Create(u))

	require.NoError(t, repo.UpdateName(u.ID, "Alice"))
	require.NoError(t, repo.UpdatePassword(u.ID, "novo"))

	got, err := repo.FindByID(u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "novo", got.PasswordHash)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo: categorias e unidades
// ──────────────────────────────────────────────────────────────────────────────

// find-or-create chamado duas vezes devolve o mesmo id.
func TestCatalogRepo_FindOrCreateIdempotente(t *testing.T) {
	store := newTestStore(t)
	repo := sqlite.NewCatalogRepository(store, logger.Nop())

	id1, err := repo.FindOrCreateCategory("Cervejas")
	require.NoError(t, err)
	id2, err := repo.FindOrCreateCategory("Cervejas")
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	u1, err := repo.FindOrCreateUnit("Long Neck", "LN")
	require.NoError(t, err)
	u2, err := repo.FindOrCreateUnit("Long Neck", "LN")
	require.NoError(t, err)
	assert.Equal(t, u1, u2)

	cats, err := repo.ListCategories()
	require.NoError(t, err)
	assert.Len(t, cats, 1)
	units, err := repo.ListUnits()
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "LN", units[0].Code)
}

func TestCatalogRepo_ListOrdenado(t *testing.T) {
	store := newTestStore(t)
	repo := sqlite.NewCatalogRepository(store, logger.Nop())

	for _, name := range []string{"Vinhos", "Cervejas", "Sucos"} {
		_, err := repo.FindOrCreateCategory(name)
		require.NoError(t, err)
	}

	cats, err := repo.ListCategories()
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "Cervejas", cats[0].Name)
	assert.Equal(t, "Sucos", cats[1].Name)
	assert.Equal(t, "Vinhos", cats[2].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Itens
// ──────────────────────────────────────────────────────────────────────────────

func TestItemRepo_AddEGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	catalog := sqlite.NewCatalogRepository(store, logger.Nop())
	items := sqlite.NewItemRepository(store, logger.Nop())

	catID, err := catalog.FindOrCreateCategory("Cervejas")
	require.NoError(t, err)
	unitID, err := catalog.FindOrCreateUnit("Long Neck", "LN")
	require.NoError(t, err)

	require.NoError(t, items.Add("Heineken", &catID, &unitID))

	list, err := items.ListWithDetails()
	require.NoError(t, err)
	require.Len(t, list, 1)

	got, err := items.GetByID(list[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Heineken", got.Name)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, catID, *got.CategoryID)
	require.NotNil(t, got.UnitID)
	assert.Equal(t, unitID, *got.UnitID)
	assert.True(t, got.Active, "item nasce ativo")
	assert.True(t, got.StockQuantity.IsZero(), "estoque inicial zero")
	assert.False(t, got.UnitCost.Valid, "custo unitário nasce nulo")
}

func TestItemRepo_AddDuplicado(t *testing.T) {
	store := newTestStore(t)
	items := sqlite.NewItemRepository(store, logger.Nop())

	require.NoError(t, items.Add("Heineken", nil, nil))
	err := items.Add("Heineken", nil, nil)
	assert.ErrorIs(t, err, domain.ErrItemAlreadyExists)

	n, err := items.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestItemRepo_CreateIfAbsent(t *testing.T) {
	store := newTestStore(t)
	items := sqlite.NewItemRepository(store, logger.Nop())

	require.NoError(t, items.CreateIfAbsent("Red Bull", nil, nil))
	require.NoError(t, items.CreateIfAbsent("Red Bull", nil, nil))

	n, err := items.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestItemRepo_UpdateEDelete(t *testing.T) {
	store := newTestStore(t)
	items := sqlite.NewItemRepository(store, logger.Nop())

	require.NoError(t, items.Add("Guaraná", nil, nil))
	list, err := items.ListWithDetails()
	require.NoError(t, err)
	require.Len(t, list, 1)
	id := list[0].ID

	require.NoError(t, items.Update(id, "Guaraná Antarctica", nil, nil))
	got, err := items.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Guaraná Antarctica", got.Name)

	require.NoError(t, items.Delete(id))
	got, err = items.GetByID(id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ListWithDetails ordena por nome e tolera categoria/unidade nulas.
func TestItemRepo_ListWithDetails(t *testing.T) {
	store := newTestStore(t)
	catalog := sqlite.NewCatalogRepository(store, logger.Nop())
	items := sqlite.NewItemRepository(store, logger.Nop())

	catID, err := catalog.FindOrCreateCategory("Cervejas")
	require.NoError(t, err)

	require.NoError(t, items.Add("Heineken", &catID, nil))
	require.NoError(t, items.Add("Aperol", nil, nil))

	list, err := items.ListWithDetails()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Aperol", list[0].Name)
	assert.Empty(t, list[0].CategoryName)
	assert.Equal(t, "Heineken", list[1].Name)
	assert.Equal(t, "Cervejas", list[1].CategoryName)
	assert.Empty(t, list[1].UnitName)
}

// Excluir a categoria não exclui o item: a referência é anulada (SET NULL).
func TestCatalogRepo_DeleteCategoryAnulaReferencia(t *testing.T) {
	store := newTestStore(t)
	catalog := sqlite.NewCatalogRepository(store, logger.Nop())
	items := sqlite.NewItemRepository(store, logger.Nop())

	catID, err := catalog.FindOrCreateCategory("Cervejas")
	require.NoError(t, err)
	require.NoError(t, items.Add("Heineken", &catID, nil))

	require.NoError(t, catalog.DeleteCategory(catID))

	list, err := items.ListWithDetails()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].CategoryID)
	assert.Empty(t, list[0].CategoryName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Onboarding e cascatas
// ──────────────────────────────────────────────────────────────────────────────

func TestTxRunner_CompleteOnboarding(t *testing.T) {
	store := newTestStore(t)
	users := sqlite.NewUserRepository(store, logger.Nop())
	establishments := sqlite.NewEstablishmentRepository(store, logger.Nop())
	runner := sqlite.NewTxRunner(store, logger.Nop())

	u := &entity.User{Name: "Admin Padrão", Email: "admin@dosedata.com", PasswordHash: "h"}
	require.NoError(t, users.Create(u))

	has, err := establishments.UserHasEstablishment(u.ID)
	require.NoError(t, err)
	require.False(t, has)

	err = runner.CompleteOnboarding(context.Background(), u.ID, "Alice", "Alice's Bar", "Main Stock")
	require.NoError(t, err)

	has, err = establishments.UserHasEstablishment(u.ID)
	require.NoError(t, err)
	assert.True(t, has)

	est, err := establishments.FindByUser(u.ID)
	require.NoError(t, err)
	require.NotNil(t, est)
	assert.Equal(t, "Alice's Bar", est.Name)

	locs, err := establishments.ListLocations(est.ID)
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, "Main Stock", locs[0].Name)

	got, err := users.FindByID(u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alice", got.Name)
}

// Falha no meio da transação (FK de usuário inexistente) não deixa estado parcial.
func TestTxRunner_CompleteOnboardingAtomico(t *testing.T) {
	store := newTestStore(t)
	_ = sqlite.NewEstablishmentRepository(store, logger.Nop())
	runner := sqlite.NewTxRunner(store, logger.Nop())

	err := runner.CompleteOnboarding(context.Background(), 999, "Alice", "Alice's Bar", "Main Stock")
	require.Error(t, err, "usuário inexistente deve violar a FK")

	var n int
	require.NoError(t, store.DB().QueryRow(`SELECT COUNT(*) FROM estabelecimentos`).Scan(&n))
	assert.Zero(t, n)
	require.NoError(t, store.DB().QueryRow(`SELECT COUNT(*) FROM locais_estoque`).Scan(&n))
	assert.Zero(t, n)
}

// Excluir o usuário cascateia para estabelecimentos, e estes para locais.
func TestCascata_UsuarioEstabelecimentoLocais(t *testing.T) {
	store := newTestStore(t)
	users := sqlite.NewUserRepository(store, logger.Nop())
	runner := sqlite.NewTxRunner(store, logger.Nop())

	u := &entity.User{Name: "Alice", Email: "alice@bar.com", PasswordHash: "h"}
	require.NoError(t, users.Create(u))
	require.NoError(t, runner.CompleteOnboarding(context.Background(), u.ID, "Alice", "Alice's Bar", "Main Stock"))

	_, err := store.DB().Exec(`DELETE FROM usuarios WHERE id = ?`, u.ID)
	require.NoError(t, err)

	var n int
	require.NoError(t, store.DB().QueryRow(`SELECT COUNT(*) FROM estabelecimentos`).Scan(&n))
	assert.Zero(t, n, "estabelecimentos do usuário excluído devem sumir")
	require.NoError(t, store.DB().QueryRow(`SELECT COUNT(*) FROM locais_estoque`).Scan(&n))
	assert.Zero(t, n, "locais do estabelecimento excluído devem sumir")
}

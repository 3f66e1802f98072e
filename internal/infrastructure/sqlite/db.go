package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/dosedata/dose-certa/pkg/config"
	"github.com/dosedata/dose-certa/pkg/logger"
)

// Store encapsula o handle compartilhado do banco SQLite embutido.
// O pool do database/sql cobre o contrato de "handle pré-aberto opcional":
// todos os repositórios compartilham o mesmo *sql.DB e a liberação de
// conexões é garantida em todos os caminhos de saída.
type Store struct {
	db   *sql.DB
	path string
	log  *logger.Logger
}

// Open abre o banco no caminho fixo configurado e aplica os pragmas.
// Os pragmas vão na DSN porque são por conexão; um Exec avulso só
// afetaria a conexão que o pool entregasse naquele momento.
func Open(cfg config.StoreConfig, log *logger.Logger) (*Store, error) {
	path := cfg.AbsPath()
	dsn := "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(10000)&_pragma=foreign_keys(1)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("erro ao abrir o banco de dados")
		return nil, fmt.Errorf("abrir banco: %w", err)
	}

	// Processo de usuário único: 1 escritor + poucos leitores bastam.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	if err := db.Ping(); err != nil {
		db.Close()
		log.Error().Err(err).Str("path", path).Msg("erro ao conectar ao banco de dados")
		return nil, fmt.Errorf("ping banco: %w", err)
	}

	log.Warn().Str("path", path).Msg("conexão com o banco de dados estabelecida")
	return &Store{db: db, path: path, log: log}, nil
}

// DB expõe o handle compartilhado para os repositórios.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path devolve o caminho do arquivo do banco.
func (s *Store) Path() string {
	return s.path
}

// Close libera o pool de conexões.
func (s *Store) Close() error {
	s.log.Warn().Str("path", s.path).Msg("conexão com o banco de dados fechada")
	return s.db.Close()
}

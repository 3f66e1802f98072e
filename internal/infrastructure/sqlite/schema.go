package sqlite

import (
	"context"
	"fmt"
)

// createTablesSQL contém um CREATE TABLE IF NOT EXISTS por tabela, na ordem
// de referência (tabelas referenciadas antes das referenciadoras). As tabelas
// de contagem, movimentação, ficha técnica e cardápio são reservadas para
// funcionalidades futuras; nenhuma lógica do núcleo as consulta.
var createTablesSQL = []string{
	`CREATE TABLE IF NOT EXISTS usuarios (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		whatsapp TEXT,
		senha_hash TEXT,
		criado_em TEXT NOT NULL DEFAULT (datetime('now', 'localtime'))
	)`,
	`CREATE TABLE IF NOT EXISTS estabelecimentos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		id_usuario INTEGER NOT NULL,
		nome TEXT NOT NULL,
		criado_em TEXT NOT NULL DEFAULT (datetime('now', 'localtime')),
		FOREIGN KEY (id_usuario) REFERENCES usuarios (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS categorias (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome TEXT UNIQUE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS unidades_medida (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome TEXT UNIQUE NOT NULL,
		sigla TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS itens (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		id_categoria INTEGER,
		id_unidade_medida INTEGER,
		nome TEXT UNIQUE NOT NULL,
		quantidade_estoque REAL NOT NULL DEFAULT 0,
		custo_unitario REAL,
		codigo_barras TEXT,
		ativo INTEGER NOT NULL DEFAULT 1,
		FOREIGN KEY (id_categoria) REFERENCES categorias (id) ON DELETE SET NULL,
		FOREIGN KEY (id_unidade_medida) REFERENCES unidades_medida (id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS locais_estoque (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		id_estabelecimento INTEGER NOT NULL,
		nome TEXT NOT NULL,
		FOREIGN KEY (id_estabelecimento) REFERENCES estabelecimentos (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS contagens (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		id_local_estoque INTEGER NOT NULL,
		id_usuario INTEGER NOT NULL,
		data_contagem TEXT NOT NULL DEFAULT (datetime('now', 'localtime')),
		observacoes TEXT,
		FOREIGN KEY (id_local_estoque) REFERENCES locais_estoque (id) ON DELETE CASCADE,
		FOREIGN KEY (id_usuario) REFERENCES usuarios (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS contagem_itens (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		id_contagem INTEGER NOT NULL,
		id_item INTEGER NOT NULL,
		quantidade_contada REAL NOT NULL,
		quantidade_sistema REAL NOT NULL,
		FOREIGN KEY (id_contagem) REFERENCES contagens (id) ON DELETE CASCADE,
		FOREIGN KEY (id_item) REFERENCES itens (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS movimentacoes_estoque (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		id_item INTEGER NOT NULL,
		id_usuario INTEGER NOT NULL,
		tipo_movimentacao TEXT NOT NULL,
		quantidade REAL NOT NULL,
		data_movimentacao TEXT NOT NULL DEFAULT (datetime('now', 'localtime')),
		observacao TEXT,
		FOREIGN KEY (id_item) REFERENCES itens (id),
		FOREIGN KEY (id_usuario) REFERENCES usuarios (id)
	)`,
	`CREATE TABLE IF NOT EXISTS fichas_tecnicas (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome TEXT UNIQUE NOT NULL,
		descricao TEXT,
		rendimento REAL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS ficha_tecnica_itens (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		id_ficha_tecnica INTEGER NOT NULL,
		id_item INTEGER NOT NULL,
		quantidade REAL NOT NULL,
		FOREIGN KEY (id_ficha_tecnica) REFERENCES fichas_tecnicas (id) ON DELETE CASCADE,
		FOREIGN KEY (id_item) REFERENCES itens (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS cardapio_categorias (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome TEXT UNIQUE NOT NULL,
		ordem INTEGER DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS cardapio_itens (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		id_cardapio_categoria INTEGER NOT NULL,
		id_item_estoque INTEGER,
		id_ficha_tecnica INTEGER,
		nome_venda TEXT NOT NULL,
		descricao TEXT,
		preco_venda REAL NOT NULL,
		disponivel INTEGER NOT NULL DEFAULT 1,
		FOREIGN KEY (id_cardapio_categoria) REFERENCES cardapio_categorias (id),
		FOREIGN KEY (id_item_estoque) REFERENCES itens (id),
		FOREIGN KEY (id_ficha_tecnica) REFERENCES fichas_tecnicas (id)
	)`,
}

// InitSchema executa o script de criação de todas as tabelas.
// Idempotente: seguro de reexecutar sobre um schema já existente.
// A falha é logada e devolvida; o chamador decide se continua.
func (s *Store) InitSchema(ctx context.Context) error {
	s.log.Info().Msg("inicializando o schema do banco de dados")
	for _, ddl := range createTablesSQL {
		if _, err := s.db.ExecContext(ctx, ddl); err != nil {
			s.log.Error().Err(err).Msg("erro ao criar as tabelas")
			return fmt.Errorf("criar tabelas: %w", err)
		}
	}
	s.log.Info().Msg("schema pronto para uso")
	return nil
}

package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/mareviva/mareviva/internal/dbx"
	"github.com/mareviva/mareviva/internal/logging"
	"github.com/mareviva/mareviva/internal/models"
	"github.com/mareviva/mareviva/internal/repositories/metadata"
)

// Demo users referenced by the seeded listings and conversation. They are
// display identities only, not registered accounts: nobody can log in as
// them.
var demoUsers = []models.User{
	{ID: "user1", Name: "José João", Email: "jose@teste.com"},
	{ID: "user2", Name: "Nathan Scott", Email: "nathan@teste.com"},
	{ID: "user3", Name: "Brooke Davis", Email: "brooke@teste.com"},
	{ID: "user4", Name: "Jamie Scott", Email: "jamie@teste.com"},
}

var demoProducts = []struct {
	in         ProductInput
	sellerID   string
	sellerName string
}{
	{
		in: ProductInput{
			Name:        "Tainha",
			Quantity:    "1kg",
			Price:       35,
			Description: "Tainha fresca pescada hoje. Excelente qualidade e sabor.",
			FishingDate: "31/12",
			ImageURI:    "local:tainha",
		},
		sellerID: "user1", sellerName: "José João",
	},
	{
		in: ProductInput{
			Name:        "Salmão",
			Quantity:    "1kg",
			Price:       135,
			Description: "O Salmão É Uma Excelente Fonte De Ácidos Gordos Ómega-3 (EPA E DHA), Essenciais Para A Saúde Do Coração, Função Cerebral E Redução De Inflamações.",
			FishingDate: "31/12",
			ImageURI:    "local:salmao",
		},
		sellerID: "user1", sellerName: "José João",
	},
	{
		in: ProductInput{
			Name:        "Atum",
			Quantity:    "1kg",
			Price:       39,
			Description: "Atum fresco, rico em proteínas e ômega-3. Ideal para sashimi.",
			FishingDate: "30/12",
			ImageURI:    "local:atum",
		},
		sellerID: "user2", sellerName: "Nathan Scott",
	},
	{
		in: ProductInput{
			Name:        "Tilápia",
			Quantity:    "1kg",
			Price:       48,
			Description: "Tilápia fresca, sabor suave e textura macia. Perfeita para grelhar.",
			FishingDate: "29/12",
			ImageURI:    "local:tilapia",
		},
		sellerID: "user3", sellerName: "Brooke Davis",
	},
}

var demoConversation = []SendMessageInput{
	{
		SenderID: "user1", SenderName: "José João",
		ReceiverID: "user2", ReceiverName: "Nathan Scott",
		Text:        "Olá, Nathan! Tenho salmão fresco disponível.",
		ProductName: "Salmão",
	},
	{
		SenderID: "user2", SenderName: "Nathan Scott",
		ReceiverID: "user1", ReceiverName: "José João",
		Text:        "Olá! Qual o preço do salmão?",
		ProductName: "Salmão",
	},
	{
		SenderID: "user1", SenderName: "José João",
		ReceiverID: "user2", ReceiverName: "Nathan Scott",
		Text:        "R$135 o quilo. Está muito fresco!",
		ProductName: "Salmão",
	},
}

// SeedService populates the database with demo listings and a demo
// conversation so a fresh install has something to browse. Seeding is
// idempotent via a metadata flag; a seeded install whose demo listings lost
// their bundled-image markers is reseeded.
type SeedService struct {
	db       *sql.DB
	meta     metadata.Repository
	products ProductService
	messages MessageService
	log      logging.Logger
}

// NewSeedService constructs a SeedService.
func NewSeedService(db *sql.DB, meta metadata.Repository, products ProductService, messages MessageService, log logging.Logger) *SeedService {
	return &SeedService{db: db, meta: meta, products: products, messages: messages, log: log}
}

// InitializeTestData seeds the demo data if it has not been seeded yet. On a
// seeded install it verifies the demo listings still carry bundled-image
// identifiers; if any lost them the demo listings are dropped and recreated.
func (s *SeedService) InitializeTestData(ctx context.Context) error {
	flag, err := s.meta.Get(ctx, metadata.KeySeedFlag)
	if err != nil {
		return err
	}

	if string(flag) == "true" {
		stale := s.staleDemoProducts(ctx)
		if stale == nil {
			return nil
		}
		for _, p := range stale {
			if res := s.products.DeleteProduct(ctx, p.ID, p.SellerID); !res.Success {
				s.log.Warn(ctx, "stale demo product not removed", "productId", p.ID, "message", res.Message)
			}
		}
	}

	for _, d := range demoProducts {
		if res := s.products.CreateProduct(ctx, d.sellerID, d.sellerName, d.in); !res.Success {
			s.log.Error(ctx, "demo product seed failed", "name", d.in.Name, "message", res.Message)
		}
	}

	for _, m := range demoConversation {
		if res := s.messages.SendMessage(ctx, m); !res.Success {
			s.log.Error(ctx, "demo message seed failed", "message", res.Message)
		}
	}

	if err := s.meta.Set(ctx, metadata.KeySeedFlag, []byte("true")); err != nil {
		return err
	}

	s.log.Info(ctx, "demo data seeded")
	return nil
}

// staleDemoProducts returns the demo listings that need recreating, or nil
// when the seeded data is intact. A demo listing is stale when its image is
// not a bundled-image identifier.
func (s *SeedService) staleDemoProducts(ctx context.Context) []models.Product {
	names := make(map[string]bool, len(demoProducts))
	for _, d := range demoProducts {
		names[d.in.Name] = true
	}

	var demo []models.Product
	needsUpdate := false
	for _, p := range s.products.AllProducts(ctx) {
		if !names[p.Name] {
			continue
		}
		demo = append(demo, p)
		if !strings.HasPrefix(p.ImageURI, models.LocalImagePrefix) {
			needsUpdate = true
		}
	}
	if !needsUpdate {
		return nil
	}
	return demo
}

// ResetTestData drops all products, messages and chats along with the seed
// flag, so the next InitializeTestData reseeds from scratch. User accounts,
// profiles and the session survive.
func (s *SeedService) ResetTestData(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, table := range []string{"products", "messages", "chats"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return err
			}
		}
		_, err := tx.ExecContext(ctx, "DELETE FROM metadata WHERE key = ?", metadata.KeySeedFlag)
		return err
	})
}

// ClearAllData wipes every table, including user accounts and the session
// pointer. Meant for development resets only.
func (s *SeedService) ClearAllData(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, table := range []string{"products", "messages", "chats", "users", "profiles", "recovery_codes", "metadata"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return err
			}
		}
		return nil
	})
}

package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mareviva/mareviva/internal/models"
	"github.com/mareviva/mareviva/internal/services"
)

func (a *App) requireLogin() bool {
	if a.current == nil {
		fmt.Fprintln(a.out, "Faça login para continuar")
		return false
	}
	return true
}

func (a *App) printProducts(list []models.Product) {
	for i, p := range list {
		fmt.Fprintf(a.out, "%d. %s — R$%.2f (%s) — %s\n", i+1, p.Name, p.Price, p.Quantity, p.SellerName)
	}
}

// pickProduct shows the list numbered and prompts for a choice. Returns nil
// when the input is not a valid number in range.
func (a *App) pickProduct(list []models.Product, prompt string) *models.Product {
	a.printProducts(list)
	choice, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return nil
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(list) {
		fmt.Fprintln(a.out, "Número inválido")
		return nil
	}
	return &list[n-1]
}

// ListProducts shows the whole catalog, oldest listing first. Available
// without login.
func (a *App) ListProducts(ctx context.Context) error {
	list := a.products.AllProducts(ctx)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "Nenhum produto anunciado ainda.")
		return nil
	}
	a.printProducts(list)
	return nil
}

// ShowProduct picks a listing from the catalog and prints it in full.
// Available without login.
func (a *App) ShowProduct(ctx context.Context) error {
	list := a.products.AllProducts(ctx)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "Nenhum produto anunciado ainda.")
		return nil
	}

	p := a.pickProduct(list, "Número do produto")
	if p == nil {
		return nil
	}

	fmt.Fprintf(a.out, "%s — R$%.2f (%s)\n", p.Name, p.Price, p.Quantity)
	fmt.Fprintf(a.out, "Vendedor: %s\n", p.SellerName)
	fmt.Fprintf(a.out, "Data da pesca: %s\n", p.FishingDate)
	fmt.Fprintf(a.out, "Imagem: %s\n", renderImage(p.ImageURI))
	fmt.Fprintln(a.out, p.Description)
	return nil
}

// renderImage maps a "local:" reference to its bundled asset name; any other
// URI is shown verbatim.
func renderImage(uri string) string {
	if uri == "" {
		return "(sem imagem)"
	}
	if name, ok := strings.CutPrefix(uri, models.LocalImagePrefix); ok {
		return name + " (imagem do aplicativo)"
	}
	return uri
}

// MyProducts shows only the logged-in user's listings.
func (a *App) MyProducts(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	list := a.products.ProductsBySeller(ctx, a.current.ID)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "Você ainda não tem anúncios.")
		return nil
	}
	a.printProducts(list)
	return nil
}

// AnnounceProduct prompts for the listing fields and creates it.
func (a *App) AnnounceProduct(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	in, err := a.promptProductInput(services.ProductInput{})
	if err != nil {
		return err
	}

	res := a.products.CreateProduct(ctx, a.current.ID, a.current.Name, *in)
	fmt.Fprintln(a.out, res.Message)
	return nil
}

// EditProduct picks one of the user's listings and re-prompts its fields.
// An empty answer keeps the current value.
func (a *App) EditProduct(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	list := a.products.ProductsBySeller(ctx, a.current.ID)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "Você ainda não tem anúncios.")
		return nil
	}

	p := a.pickProduct(list, "Número do anúncio")
	if p == nil {
		return nil
	}

	in, err := a.promptProductInput(services.ProductInput{
		Name:        p.Name,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Description: p.Description,
		FishingDate: p.FishingDate,
	})
	if err != nil {
		return err
	}

	res := a.products.UpdateProduct(ctx, p.ID, a.current.ID, *in)
	fmt.Fprintln(a.out, res.Message)
	return nil
}

// RemoveProduct picks one of the user's listings and deletes it.
func (a *App) RemoveProduct(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	list := a.products.ProductsBySeller(ctx, a.current.ID)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "Você ainda não tem anúncios.")
		return nil
	}

	p := a.pickProduct(list, "Número do anúncio a remover")
	if p == nil {
		return nil
	}

	res := a.products.DeleteProduct(ctx, p.ID, a.current.ID)
	fmt.Fprintln(a.out, res.Message)
	return nil
}

// promptProductInput collects the listing fields. Non-zero values in cur act
// as defaults kept on an empty answer; the image is always optional.
func (a *App) promptProductInput(cur services.ProductInput) (*services.ProductInput, error) {
	in := cur

	name, err := getSimpleText(a.reader, labelWithDefault("Produto", cur.Name), a.out)
	if err != nil {
		return nil, err
	}
	if name != "" {
		in.Name = name
	}

	priceLabel := "Preço (R$)"
	if cur.Price > 0 {
		priceLabel = fmt.Sprintf("Preço (R$) [%.2f]", cur.Price)
	}
	priceText, err := getSimpleText(a.reader, priceLabel, a.out)
	if err != nil {
		return nil, err
	}
	if priceText != "" {
		price, err := strconv.ParseFloat(priceText, 64)
		if err != nil {
			fmt.Fprintln(a.out, "Preço inválido")
			return nil, err
		}
		in.Price = price
	}

	quantity, err := getSimpleText(a.reader, labelWithDefault("Quantidade (ex: 1kg)", cur.Quantity), a.out)
	if err != nil {
		return nil, err
	}
	if quantity != "" {
		in.Quantity = quantity
	}

	description, err := GetMultiline(a.reader, "Descrição", a.out)
	if err != nil {
		return nil, err
	}
	if description != "" {
		in.Description = description
	}

	fishingDate, err := getSimpleText(a.reader, labelWithDefault("Data da pesca (ex: 15/03)", cur.FishingDate), a.out)
	if err != nil {
		return nil, err
	}
	if fishingDate != "" {
		in.FishingDate = fishingDate
	}

	// empty keeps the stored image on edit
	imageURI, err := getSimpleText(a.reader, "Imagem (URI, opcional)", a.out)
	if err != nil {
		return nil, err
	}
	in.ImageURI = imageURI

	return &in, nil
}

func labelWithDefault(label, cur string) string {
	if cur == "" {
		return label
	}
	return fmt.Sprintf("%s [%s]", label, cur)
}

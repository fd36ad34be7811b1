package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Recover(ctx context.Context) error
	ListProducts(ctx context.Context) error
	ShowProduct(ctx context.Context) error
	MyProducts(ctx context.Context) error
	AnnounceProduct(ctx context.Context) error
	EditProduct(ctx context.Context) error
	RemoveProduct(ctx context.Context) error
	ListChats(ctx context.Context) error
	OpenChat(ctx context.Context) error
	ContactSeller(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ResetDemoData(ctx context.Context) error
	ClearAllData(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads a line per iteration, parses the first token as the command
// and dispatches to methods on a. Unknown commands are reported back to the
// user. The loop exits on reader EOF or when the user types "exit"/"quit",
// or "sair" while logged out.
//
// Errors returned by command handlers are ignored here; handlers print their
// own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("mare %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "ajuda", "help":
			if a.isLoggedIn() {
				printlnFn("Comandos: produtos, ver, meus, anunciar, editar, remover, conversas, abrir, contato, perfil, editarperfil, sair, exit")
			} else {
				printlnFn("Comandos: cadastrar, entrar, recuperar, produtos, ver, sair")
			}

		case "cadastrar":
			_ = a.Register(ctx)

		case "entrar":
			_ = a.Login(ctx)

		case "recuperar":
			_ = a.Recover(ctx)

		case "produtos":
			_ = a.ListProducts(ctx)

		case "ver":
			_ = a.ShowProduct(ctx)

		case "meus":
			_ = a.MyProducts(ctx)

		case "anunciar":
			_ = a.AnnounceProduct(ctx)

		case "editar":
			_ = a.EditProduct(ctx)

		case "remover":
			_ = a.RemoveProduct(ctx)

		case "conversas":
			_ = a.ListChats(ctx)

		case "abrir":
			_ = a.OpenChat(ctx)

		case "contato":
			_ = a.ContactSeller(ctx)

		case "perfil":
			_ = a.ShowProfile(ctx)

		case "editarperfil":
			_ = a.EditProfile(ctx)

		// development helpers, intentionally absent from "ajuda"
		case "resetdemo":
			_ = a.ResetDemoData(ctx)

		case "limpartudo":
			_ = a.ClearAllData(ctx)

		case "sair":
			if a.isLoggedIn() {
				_ = a.Logout(ctx)
			} else {
				printlnFn("Até logo!")
				return
			}

		case "exit", "quit":
			printlnFn("Até logo!")
			return

		default:
			printlnFn("Comando desconhecido:", cmd)
		}
	}
}

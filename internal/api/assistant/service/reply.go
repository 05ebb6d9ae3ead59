package assistantService

import (
	"EditorialAssistant/internal/api/catalog"
	"EditorialAssistant/internal/api/support"
	"fmt"
	"strings"
)

const (
	msgAskTitle = "Não foi possível identificar o título. Tente novamente informando o título entre aspas, por exemplo: \"A Abelha\"."

	msgBookNotFound = "Não encontrei esse título no catálogo."

	msgStoresNotFound = "Não foi possível localizar pontos de venda para o livro informado."

	msgNoStores = "Não há lojas cadastradas para este título no momento."

	msgSuggestWhere = "Quer ver onde comprar? Diga, por exemplo: 'Em São Paulo?'"

	msgTicketFailed = "Não foi possível abrir o ticket agora. Tente novamente em instantes."
)

func mdEscape(text string) string {
	text = strings.ReplaceAll(text, "#", "\\#")
	text = strings.ReplaceAll(text, "*", "\\*")
	text = strings.ReplaceAll(text, "_", "\\_")
	return text
}

func formatBookDetails(details *catalog.BookDetailsResponse) string {
	return fmt.Sprintf(
		"**Título:** %s\n**Autor:** %s\n**Imprint:** %s\n**Lançamento:** %s\n\n**Sinopse:** %s\n",
		mdEscape(details.Title),
		mdEscape(details.Author),
		mdEscape(details.Imprint),
		mdEscape(details.ReleaseDate),
		mdEscape(details.Synopsis),
	)
}

func formatWhereToBuy(stores *catalog.StoresResponse) string {
	lines := []string{fmt.Sprintf("**Onde comprar — %s**", mdEscape(stores.Title))}

	if stores.City != nil && *stores.City != "" {
		lines = append(lines, fmt.Sprintf("**Cidade:** %s", *stores.City))
	}

	if len(stores.Stores) > 0 {
		lines = append(lines, "\n**Lojas físicas:**")
		for _, s := range stores.Stores {
			lines = append(lines, "- "+s)
		}
	}

	if len(stores.Online) > 0 {
		lines = append(lines, "\n**Online:**")
		for _, s := range stores.Online {
			lines = append(lines, "- "+s)
		}
	}

	if len(stores.Stores) == 0 && len(stores.Online) == 0 {
		lines = append(lines, "\n"+msgNoStores)
	}

	return strings.Join(lines, "\n") + "\n"
}

func formatTicketOpened(ticket *support.TicketResponse) string {
	return fmt.Sprintf("Ticket aberto com sucesso (ID: %s). Status: %s.", ticket.ID, ticket.Status)
}

func formatMissingTicketFields(missing []string) string {
	return fmt.Sprintf("Para abrir o ticket, preciso de: %s.", strings.Join(missing, ", "))
}

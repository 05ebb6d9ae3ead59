package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTrailingCity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trailing em phrase",
			input:    `Onde comprar "A Abelha" em São Paulo?`,
			expected: "São Paulo",
		},
		{
			name:     "continuation with e em",
			input:    "E em Florianópolis?",
			expected: "Florianópolis",
		},
		{
			name:     "no preposition",
			input:    "Onde compro livros?",
			expected: "",
		},
		{
			name:     "na variant",
			input:    "tem na Bahia",
			expected: "Bahia",
		},
		{
			name:     "single letter city rejected",
			input:    "em a?",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractTrailingCity(tt.input))
		})
	}
}

func TestTitleFromText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "quoted span wins",
			input:    `Quero detalhes de "A Abelha" por favor`,
			expected: "A Abelha",
		},
		{
			name:     "after sobre",
			input:    "Quero saber sobre A Abelha",
			expected: "A Abelha",
		},
		{
			name:     "after detalhes de with punctuation",
			input:    "Me dá detalhes de Coração Selvagem?",
			expected: "Coração Selvagem",
		},
		{
			name:     "too short candidate rejected",
			input:    "quero saber sobre a?",
			expected: "",
		},
		{
			name:     "no extractable title",
			input:    "bom dia",
			expected: "",
		},
		{
			name:     "empty text",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TitleFromText(tt.input))
		})
	}
}

func TestRuleTicketQuotedSubject(t *testing.T) {
	result, ok := ruleTicketQuotedSubject("Abra um ticket 'Site fora do ar'", Session{})
	require.True(t, ok)
	assert.Equal(t, IntentSupport, result.Intent)
	assert.Equal(t, 0.99, result.Confidence)
	assert.Equal(t, "Site fora do ar", StringValue(result.Slots.Subject))

	result, ok = ruleTicketQuotedSubject(`abrir chamado "Pedido não chegou"`, Session{})
	require.True(t, ok)
	assert.Equal(t, "Pedido não chegou", StringValue(result.Slots.Subject))

	_, ok = ruleTicketQuotedSubject("Abra um ticket sem aspas", Session{})
	assert.False(t, ok)
}

func TestRuleTicketPayload(t *testing.T) {
	result, ok := ruleTicketPayload("Abrir ticket: nome=Ana Silva, email=ana@exemplo.com, assunto=Erro no app, mensagem=Nada funciona", Session{})
	require.True(t, ok)
	assert.Equal(t, IntentSupport, result.Intent)
	assert.Equal(t, 0.99, result.Confidence)
	assert.Equal(t, "Ana Silva", StringValue(result.Slots.Name))
	assert.Equal(t, "ana@exemplo.com", StringValue(result.Slots.Email))
	assert.Equal(t, "Erro no app", StringValue(result.Slots.Subject))
	assert.Equal(t, "Nada funciona", StringValue(result.Slots.Message))

	// English keys are accepted too.
	result, ok = ruleTicketPayload("abrir chamado: name=Bob, subject=Broken link", Session{})
	require.True(t, ok)
	assert.Equal(t, "Bob", StringValue(result.Slots.Name))
	assert.Equal(t, "Broken link", StringValue(result.Slots.Subject))
	assert.Nil(t, result.Slots.Email)

	// Ticket command without parseable fields still signals support intent.
	result, ok = ruleTicketPayload("abra um chamado por favor", Session{})
	require.True(t, ok)
	assert.Equal(t, IntentSupport, result.Intent)
	assert.Equal(t, 0.85, result.Confidence)
	assert.Equal(t, Slots{}, result.Slots)

	_, ok = ruleTicketPayload("quero comprar um livro", Session{})
	assert.False(t, ok)
}

func TestRuleBareCityContinuation(t *testing.T) {
	session := Session{LastTitle: "A Abelha"}

	result, ok := ruleBareCityContinuation("E em Florianópolis?", session)
	require.True(t, ok)
	assert.Equal(t, IntentWhereToBuy, result.Intent)
	assert.Equal(t, 0.99, result.Confidence)
	assert.Equal(t, "A Abelha", StringValue(result.Slots.Title))
	assert.Equal(t, "Florianópolis", StringValue(result.Slots.City))

	result, ok = ruleBareCityContinuation("no Rio de Janeiro", session)
	require.True(t, ok)
	assert.Equal(t, "Rio de Janeiro", StringValue(result.Slots.City))

	// No title on record means the continuation has nothing to continue.
	_, ok = ruleBareCityContinuation("E em Florianópolis?", Session{})
	assert.False(t, ok)

	// Anything beyond the city phrase disqualifies the rule.
	_, ok = ruleBareCityContinuation(`Onde comprar "A Abelha" em São Paulo?`, session)
	assert.False(t, ok)
}

func TestRulePurchaseQuery(t *testing.T) {
	result, ok := rulePurchaseQuery(`Onde comprar "A Abelha" em São Paulo?`, Session{})
	require.True(t, ok)
	assert.Equal(t, IntentWhereToBuy, result.Intent)
	assert.Equal(t, 0.95, result.Confidence)
	assert.Equal(t, "A Abelha", StringValue(result.Slots.Title))
	assert.Equal(t, "São Paulo", StringValue(result.Slots.City))

	// Without a quoted title the confidence drops.
	result, ok = rulePurchaseQuery("Onde compro esse livro?", Session{})
	require.True(t, ok)
	assert.Equal(t, 0.80, result.Confidence)
	assert.Nil(t, result.Slots.Title)

	_, ok = rulePurchaseQuery("Quero detalhes do livro", Session{})
	assert.False(t, ok)
}

func TestRuleQuotedTitle(t *testing.T) {
	result, ok := ruleQuotedTitle(`Me fale sobre "A Abelha"`, Session{})
	require.True(t, ok)
	assert.Equal(t, IntentDetails, result.Intent)
	assert.Equal(t, 0.98, result.Confidence)
	assert.Equal(t, "A Abelha", StringValue(result.Slots.Title))

	_, ok = ruleQuotedTitle("sem aspas aqui", Session{})
	assert.False(t, ok)
}

func TestStripQuotes(t *testing.T) {
	assert.Equal(t, "abc", stripQuotes(`"abc"`))
	assert.Equal(t, "abc", stripQuotes("'abc'"))
	assert.Equal(t, "abc", stripQuotes("“abc”"))
	assert.Equal(t, "abc", stripQuotes("abc"))
	assert.Equal(t, `"abc`, stripQuotes(`"abc`))
}

// Package stations holds the fixed registry of monitoring station codes
// used by the ENA derivation procedure. Codes identify both physical
// gauging points and virtual (derived) stations; changing a code is a
// breaking schema change for every dataset that references it.
package stations

// Code identifies a physical or virtual hydrological monitoring point.
type Code int

// Registry of station codes, grouped by basin.
const (
	// Alto Tietê
	Traicao                       Code = 104
	Guarapiranga                  Code = 117
	Billings                      Code = 118
	BillingsArtificial            Code = 319
	BillingsPedras                Code = 119
	EdgardSouzaWithTributaries    Code = 161
	EdgardSouzaWithoutTributaries Code = 164
	Pedras                        Code = 116
	Pedreira                      Code = 109
	HenryBorden                   Code = 318
	BarraBonita                   Code = 237
	BarraBonitaArtificial         Code = 37
	Bariri                        Code = 238
	BaririArtificial              Code = 38
	Ibitinga                      Code = 239
	IbitingaArtificial            Code = 39
	Promissao                     Code = 240
	PromissaoArtificial           Code = 40
	NovaAvanhandava               Code = 242
	NovaAvanhandavaArtificial     Code = 42
	TresIrmaos                    Code = 243
	TresIrmaosArtificial          Code = 43
	IlhaSolteira                  Code = 34
	IlhaSolteiraEquivalent        Code = 44
	Jupia                         Code = 245
	JupiaArtificial               Code = 45
	PortoPrimavera                Code = 246
	PortoPrimaveraArtificial      Code = 46
	Itaipu                        Code = 266
	ItaipuArtificial              Code = 66

	// Paraíba do Sul
	SantaCecilia            Code = 125
	SantaCeciliaPumping     Code = 298
	Anta                    Code = 129
	Santana                 Code = 203
	SantanaSpill            Code = 304
	SantanaArtificial       Code = 315
	AntaArtificial          Code = 127
	Tocos                   Code = 201
	TocosSpill              Code = 317
	Vigario                 Code = 316
	SimplicioArtificial     Code = 126
	IlhaDosPombos           Code = 130
	IlhaDosPombosArtificial Code = 299
	NiloPecanhaArtificial   Code = 131
	Lajes                   Code = 202
	LajesArtificial         Code = 132
	FontesArtificial        Code = 303
	PereiraPassosArtificial Code = 306

	// Grande
	Camargos Code = 1
	Itutinga Code = 2

	// São Francisco
	Moxoto      Code = 173
	PauloAfonso Code = 175
	Complexo    Code = 176

	// Iguaçu
	Jordao           Code = 73
	JordaoArtificial Code = 70
	Segredo          Code = 76
	SegredoArtificial Code = 75

	// Paraguai
	ItiquiraI  Code = 259
	ItiquiraII Code = 252

	// Xingu
	Pimental            Code = 288
	BeloMonteArtificial Code = 292
	PimentalArtificial  Code = 302
)

var names = map[Code]string{
	Traicao:                       "Traição",
	Guarapiranga:                  "Guarapiranga",
	Billings:                      "Billings",
	BillingsArtificial:            "Billings Artificial",
	BillingsPedras:                "Billings + Pedras",
	EdgardSouzaWithTributaries:    "Edgard de Souza com tributários",
	EdgardSouzaWithoutTributaries: "Edgard de Souza sem tributários",
	Pedras:                        "Pedras",
	Pedreira:                      "Pedreira",
	HenryBorden:                   "Henry Borden",
	BarraBonita:                   "Barra Bonita",
	BarraBonitaArtificial:         "Barra Bonita Artificial",
	Bariri:                        "Bariri",
	BaririArtificial:              "Bariri Artificial",
	Ibitinga:                      "Ibitinga",
	IbitingaArtificial:            "Ibitinga Artificial",
	Promissao:                     "Promissão",
	PromissaoArtificial:           "Promissão Artificial",
	NovaAvanhandava:               "Nova Avanhandava",
	NovaAvanhandavaArtificial:     "Nova Avanhandava Artificial",
	TresIrmaos:                    "Três Irmãos",
	TresIrmaosArtificial:          "Três Irmãos Artificial",
	IlhaSolteira:                  "Ilha Solteira",
	IlhaSolteiraEquivalent:        "Ilha Solteira Equivalente",
	Jupia:                         "Jupiá",
	JupiaArtificial:               "Jupiá Artificial",
	PortoPrimavera:                "Porto Primavera",
	PortoPrimaveraArtificial:      "Porto Primavera Artificial",
	Itaipu:                        "Itaipu",
	ItaipuArtificial:              "Itaipu Artificial",
	SantaCecilia:                  "Santa Cecília",
	SantaCeciliaPumping:           "Bombeamento de Santa Cecília",
	Anta:                          "Anta",
	Santana:                       "Santana",
	SantanaSpill:                  "Vertimento de Santana",
	SantanaArtificial:             "Santana Artificial",
	AntaArtificial:                "Anta Artificial",
	Tocos:                         "Tocos",
	TocosSpill:                    "Vertimento de Tocos",
	Vigario:                       "Vigário",
	SimplicioArtificial:           "Simplício Artificial",
	IlhaDosPombos:                 "Ilha dos Pombos",
	IlhaDosPombosArtificial:       "Ilha dos Pombos Artificial",
	NiloPecanhaArtificial:         "Nilo Peçanha Artificial",
	Lajes:                         "Lajes",
	LajesArtificial:               "Lajes Artificial",
	FontesArtificial:              "Fontes Artificial",
	PereiraPassosArtificial:       "Pereira Passos Artificial",
	Camargos:                      "Camargos",
	Itutinga:                      "Itutinga",
	Moxoto:                        "Moxotó",
	PauloAfonso:                   "Paulo Afonso",
	Complexo:                      "Complexo",
	Jordao:                        "Jordão",
	JordaoArtificial:              "Jordão Artificial",
	Segredo:                       "Segredo",
	SegredoArtificial:             "Segredo Artificial",
	ItiquiraI:                     "Itiquira I",
	ItiquiraII:                    "Itiquira II",
	Pimental:                      "Pimental",
	BeloMonteArtificial:           "Belo Monte Artificial",
	PimentalArtificial:            "Pimental Artificial",
}

// Name returns the human-readable station name, or "unknown" for codes
// outside the registry.
func Name(c Code) string {
	if n, ok := names[c]; ok {
		return n
	}
	return "unknown"
}

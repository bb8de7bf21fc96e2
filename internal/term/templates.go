package term

// Conteúdo literal dos termos de consentimento da clínica. O texto legal é dado,
// não lógica: os corpos carregam os placeholders do vocabulário ({{...}}) e ainda
// trazem as linhas de assinatura manual dos modelos antigos em papel, que o motor
// de substituição remove na renderização.

const termoCabecalho = `Paciente: {{nome_paciente}}
CPF: {{cpf_paciente}}
Data de nascimento: {{data_nascimento}}
Profissional responsável: {{nome_profissional}} - {{registro_profissional}}
Procedimento: {{procedimento}}
`

const termoAutorizacaoImagem = `
AUTORIZAÇÃO DE USO DE IMAGEM

{{autorizacao_imagem}}
`

const termoEncerramento = `
Declaro que li e compreendi as informações acima, que tive a oportunidade de
esclarecer todas as minhas dúvidas e que consinto de forma livre e esclarecida
com a realização do procedimento.

Data da assinatura: {{data_assinatura}}

Local e Data: ____________________________
Assinatura do Paciente: ____________________________
Assinatura do Profissional: ____________________________
`

// NewRegistry monta o registro com os modelos embutidos da clínica e seus aliases
// de negócio (nomes clinicamente equivalentes compartilham o mesmo termo).
// O registro retornado é somente leitura.
func NewRegistry() *Registry {
	defs := []*TemplateDefinition{
		{
			Key:           "toxina-botulinica",
			Label:         "Toxina Botulínica",
			TitleTemplate: "Termo de Consentimento - {{procedimento}}",
			BodyTemplate: termoCabecalho + `
TERMO DE CONSENTIMENTO LIVRE E ESCLARECIDO
APLICAÇÃO DE TOXINA BOTULÍNICA

Fui informado(a) de que a toxina botulínica é aplicada por via intramuscular com
a finalidade de atenuar rugas dinâmicas, e que seu efeito é temporário, com
duração média de 4 a 6 meses, podendo variar conforme o organismo.

Estou ciente de que podem ocorrer efeitos transitórios como edema, eritema,
equimoses, dor local, cefaleia e, raramente, ptose palpebral. Comprometo-me a
seguir as orientações pós-procedimento, incluindo não massagear a região tratada
e não me deitar nas primeiras 4 horas.
` + termoAutorizacaoImagem + termoEncerramento,
		},
		{
			Key:           "preenchimento-facial",
			Label:         "Preenchimento com Ácido Hialurônico",
			TitleTemplate: "Termo de Consentimento - {{procedimento}}",
			BodyTemplate: termoCabecalho + `
TERMO DE CONSENTIMENTO LIVRE E ESCLARECIDO
PREENCHIMENTO COM ÁCIDO HIALURÔNICO

Fui informado(a) de que o preenchimento com ácido hialurônico tem por objetivo a
reposição de volume e a correção de sulcos e contornos faciais ou labiais, com
resultado temporário de 6 a 18 meses.

Estou ciente dos possíveis eventos adversos: edema, equimoses, assimetrias
transitórias, nódulos e, em casos raros, oclusão vascular, que exige atendimento
imediato. Fui orientado(a) sobre os sinais de alerta e sobre a disponibilidade
de hialuronidase para reversão.
` + termoAutorizacaoImagem + termoEncerramento,
		},
		{
			Key:           "peeling-quimico",
			Label:         "Peeling Químico",
			TitleTemplate: "Termo de Consentimento - {{procedimento}}",
			BodyTemplate: termoCabecalho + `
TERMO DE CONSENTIMENTO LIVRE E ESCLARECIDO
PEELING QUÍMICO

Fui informado(a) de que o peeling químico promove a renovação das camadas da
pele por meio de agentes esfoliantes, podendo causar descamação visível,
vermelhidão e sensação de ardência por alguns dias.

Comprometo-me a utilizar fotoproteção diária e a não remover manualmente a pele
em descamação, sob risco de manchas e cicatrizes. Estou ciente de que o número
de sessões varia conforme a indicação.
` + termoAutorizacaoImagem + termoEncerramento,
		},
		{
			Key:           "microagulhamento",
			Label:         "Microagulhamento",
			TitleTemplate: "Termo de Consentimento - {{procedimento}}",
			BodyTemplate: termoCabecalho + `
TERMO DE CONSENTIMENTO LIVRE E ESCLARECIDO
MICROAGULHAMENTO

Fui informado(a) de que o microagulhamento utiliza microperfurações controladas
para estimular a produção de colágeno, sendo indicado para cicatrizes, poros
dilatados e rejuvenescimento.

Estou ciente de que são esperados eritema e edema leves por 24 a 72 horas, e de
que devo evitar exposição solar, maquiagem e ativos irritantes no período
orientado pelo profissional.
` + termoAutorizacaoImagem + termoEncerramento,
		},
		{
			Key:           "bioestimulador-colageno",
			Label:         "Bioestimulador de Colágeno",
			TitleTemplate: "Termo de Consentimento - {{procedimento}}",
			BodyTemplate: termoCabecalho + `
TERMO DE CONSENTIMENTO LIVRE E ESCLARECIDO
BIOESTIMULADOR DE COLÁGENO

Fui informado(a) de que o bioestimulador de colágeno é injetável e atua de forma
gradual, com resultados progressivos ao longo de semanas a meses, podendo ser
necessárias múltiplas sessões.

Estou ciente dos possíveis eventos adversos: edema, equimoses, dor local e,
raramente, nódulos tardios. Comprometo-me a realizar a massagem domiciliar
conforme orientação, quando indicada.
` + termoAutorizacaoImagem + termoEncerramento,
		},
		{
			Key:           "fios-pdo",
			Label:         "Fios de PDO",
			TitleTemplate: "Termo de Consentimento - {{procedimento}}",
			BodyTemplate: termoCabecalho + `
TERMO DE CONSENTIMENTO LIVRE E ESCLARECIDO
FIOS DE PDO

Fui informado(a) de que os fios de polidioxanona (PDO) são absorvíveis e
promovem sustentação e estímulo de colágeno, com resultado temporário.

Estou ciente de que podem ocorrer edema, equimoses, dor, ondulações transitórias
e, raramente, extrusão do fio. Comprometo-me a evitar movimentos faciais amplos
e esforço físico no período orientado.
` + termoAutorizacaoImagem + termoEncerramento,
		},
		{
			Key:           "laser-co2",
			Label:         "Laser CO2 Fracionado",
			TitleTemplate: "Termo de Consentimento - {{procedimento}}",
			BodyTemplate: termoCabecalho + `
TERMO DE CONSENTIMENTO LIVRE E ESCLARECIDO
LASER CO2 FRACIONADO

Fui informado(a) de que o laser CO2 fracionado promove renovação da pele por
microcolunas de calor, com período de recuperação de 5 a 10 dias com
vermelhidão, edema e descamação.

Estou ciente do risco de hiperpigmentação pós-inflamatória, especialmente com
exposição solar, e comprometo-me ao uso rigoroso de fotoproteção e dos
cuidados domiciliares prescritos.
` + termoAutorizacaoImagem + termoEncerramento,
		},
		{
			Key:           "skinbooster",
			Label:         "Skinbooster",
			TitleTemplate: "Termo de Consentimento - {{procedimento}}",
			BodyTemplate: termoCabecalho + `
TERMO DE CONSENTIMENTO LIVRE E ESCLARECIDO
SKINBOOSTER

Fui informado(a) de que o skinbooster é a aplicação intradérmica de ácido
hialurônico de baixa reticulação para hidratação profunda da pele, com efeito
temporário e necessidade de sessões de manutenção.

Estou ciente de que podem ocorrer pápulas transitórias no local da aplicação,
edema e equimoses, com resolução espontânea em poucos dias.
` + termoAutorizacaoImagem + termoEncerramento,
		},
		{
			Key:           "intradermoterapia",
			Label:         "Intradermoterapia",
			TitleTemplate: "Termo de Consentimento - {{procedimento}}",
			BodyTemplate: termoCabecalho + `
TERMO DE CONSENTIMENTO LIVRE E ESCLARECIDO
INTRADERMOTERAPIA

Fui informado(a) de que a intradermoterapia consiste na aplicação de ativos
diretamente na pele ou no tecido subcutâneo, conforme a indicação, e que os
resultados dependem da associação com hábitos saudáveis.

Estou ciente dos possíveis eventos adversos: dor local, edema, equimoses e,
raramente, reações alérgicas aos ativos utilizados, que devem ser comunicadas
imediatamente ao profissional.
` + termoAutorizacaoImagem + termoEncerramento,
		},
		{
			Key:           "ultrassom-microfocado",
			Label:         "Ultrassom Microfocado",
			TitleTemplate: "Termo de Consentimento - {{procedimento}}",
			BodyTemplate: termoCabecalho + `
TERMO DE CONSENTIMENTO LIVRE E ESCLARECIDO
ULTRASSOM MICROFOCADO

Fui informado(a) de que o ultrassom microfocado promove efeito lifting por
aquecimento das camadas profundas da pele, com resultado progressivo em até 90
dias e possibilidade de desconforto durante a aplicação.

Estou ciente de que podem ocorrer eritema, edema e dormência transitória no
trajeto de nervos superficiais, com resolução espontânea.
` + termoAutorizacaoImagem + termoEncerramento,
		},
		{
			Key:           "limpeza-de-pele",
			Label:         "Limpeza de Pele Profunda",
			TitleTemplate: "Termo de Consentimento - {{procedimento}}",
			BodyTemplate: termoCabecalho + `
TERMO DE CONSENTIMENTO LIVRE E ESCLARECIDO
LIMPEZA DE PELE PROFUNDA

Fui informado(a) de que a limpeza de pele profunda envolve higienização,
esfoliação e extração de comedões, podendo causar vermelhidão e sensibilidade
transitórias.

Comprometo-me a seguir as orientações pós-procedimento, incluindo fotoproteção
e suspensão temporária de ácidos de uso domiciliar.
` + termoAutorizacaoImagem + termoEncerramento,
		},
		{
			Key:           "lipo-de-papada",
			Label:         "Lipo Enzimática de Papada",
			TitleTemplate: "Termo de Consentimento - {{procedimento}}",
			BodyTemplate: termoCabecalho + `
TERMO DE CONSENTIMENTO LIVRE E ESCLARECIDO
LIPO ENZIMÁTICA DE PAPADA

Fui informado(a) de que a aplicação de enzimas lipolíticas na região submentual
visa a redução de gordura localizada, com resultado gradual e possível
necessidade de mais de uma sessão.

Estou ciente de que edema importante nos primeiros dias é esperado, além de
possível dor local, equimoses e endurecimento transitório da região.
` + termoAutorizacaoImagem + termoEncerramento,
		},
	}

	aliases := map[string]string{
		"botox":                "toxina-botulinica",
		"preenchimento-labial": "preenchimento-facial",
		"acido-hialuronico":    "preenchimento-facial",
		"sculptra":             "bioestimulador-colageno",
		"fios-de-sustentacao":  "fios-pdo",
		"laser-fracionado":     "laser-co2",
		"enzimas":              "intradermoterapia",
		"lipolise-de-papada":   "lipo-de-papada",
		"ultraformer":          "ultrassom-microfocado",
	}

	return newRegistry(defs, aliases)
}

package help

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts holds the help of every questionnaire field, keyed by field id.
var Texts = map[string]HelpText{
	// Dados Pessoais
	"fullName": {
		Title:       "NOME COMPLETO",
		Description: "Seu nome como deve aparecer no sumário.",
		Details:     "Obrigatório.",
	},
	"birthDate": {
		Title:       "DATA DE NASCIMENTO",
		Description: "Usada para contextualizar a prescrição por faixa etária.",
		Details:     "Obrigatório. Formato AAAA-MM-DD, por exemplo 1990-04-12.",
	},
	"email": {
		Title:       "EMAIL",
		Description: "Endereço para contato sobre a sua avaliação.",
		Details:     "Obrigatório.",
	},
	"phone": {
		Title:       "TELEFONE",
		Description: "Número para contato, de preferência com DDD.",
		Details:     "Obrigatório. Exemplo: (11) 98765-4321",
	},
	"gender": {
		Title:       "GÊNERO",
		Description: "Gênero declarado.",
		Details:     "Obrigatório. Masculino, Feminino ou Outro.",
	},

	// Saúde
	"chronicConditions": {
		Title:       "CONDIÇÕES CRÔNICAS",
		Description: "Doenças crônicas diagnosticadas.",
		Details:     "Exemplos: hipertensão, diabetes, asma. Deixe em branco se não houver.",
	},
	"medications": {
		Title:       "MEDICAMENTOS EM USO",
		Description: "Medicamentos de uso contínuo.",
		Details:     "Alguns medicamentos alteram a resposta cardíaca ao esforço.",
	},
	"injuries": {
		Title:       "LESÕES ANTERIORES",
		Description: "Lesões musculares, articulares ou ósseas já sofridas.",
		Details:     "Inclua lesões antigas que ainda causam desconforto.",
	},
	"surgeries": {
		Title:       "CIRURGIAS ANTERIORES",
		Description: "Procedimentos cirúrgicos já realizados.",
		Details:     "Informe também cirurgias recentes em recuperação.",
	},
	"painAreas": {
		Title:       "ÁREAS COM DOR",
		Description: "Regiões do corpo com dor ou desconforto frequente.",
		Details:     "Exemplos: lombar, joelho, ombro.",
	},
	"painIntensity": {
		Title:       "INTENSIDADE DA DOR",
		Description: "Intensidade da dor de 0 (nenhuma) a 10 (máxima).",
		Details:     "Só aparece no sumário quando há áreas com dor informadas.",
	},
	"allergies": {
		Title:       "ALERGIAS",
		Description: "Alergias a medicamentos, alimentos ou materiais.",
		Details:     "Deixe em branco se não houver.",
	},
	"pregnantOrNursing": {
		Title:       "GRAVIDEZ OU AMAMENTAÇÃO",
		Description: "Indique se está grávida ou amamentando.",
		Details:     "Registrado como condição especial no sumário.",
	},
	"smokingHistory": {
		Title:       "TABAGISMO",
		Description: "Histórico de uso de cigarro ou similares.",
		Details:     "Exemplo: ex-fumante há 5 anos.",
	},
	"alcoholConsumption": {
		Title:       "CONSUMO DE ÁLCOOL",
		Description: "Frequência aproximada de consumo de bebidas alcoólicas.",
		Details:     "Exemplo: socialmente, nos fins de semana.",
	},

	// Atividade Física
	"currentlyActive": {
		Title:       "ATIVIDADE ATUAL",
		Description: "Se você pratica alguma atividade física hoje.",
		Details:     "Ao responder Sim, informe a atividade e há quanto tempo pratica.",
	},
	"activityType": {
		Title:       "QUAL ATIVIDADE",
		Description: "Atividade praticada atualmente.",
		Details:     "Exemplos: musculação, corrida, natação.",
	},
	"activityDuration": {
		Title:       "HÁ QUANTO TEMPO",
		Description: "Tempo de prática da atividade atual.",
		Details:     "",
	},
	"experienceLevel": {
		Title:       "NÍVEL DE EXPERIÊNCIA",
		Description: "Sua experiência com treinamento físico.",
		Details:     "Obrigatório. Iniciante, Intermediário, Avançado ou Muito Avançado.",
	},
	"weeklyFrequency": {
		Title:       "FREQUÊNCIA SEMANAL",
		Description: "Quantos dias por semana você deseja treinar.",
		Details:     "De 1 a 7 dias. Padrão: 3.",
	},
	"trainingLocation": {
		Title:       "LOCAL DE TREINO",
		Description: "Onde você prefere treinar.",
		Details:     "Obrigatório. Academia, Casa ou Ar Livre.",
	},

	// Objetivos
	"primaryGoals": {
		Title:       "OBJETIVOS PRINCIPAIS",
		Description: "Selecione um ou mais objetivos.",
		Details:     "Obrigatório. Espaço marca ou desmarca, Enter confirma. A ordem de seleção é mantida no sumário.",
	},
	"timeframe": {
		Title:       "PRAZO",
		Description: "Em quanto tempo deseja atingir seus objetivos.",
		Details:     "Obrigatório.",
	},
	"motivation": {
		Title:       "MOTIVAÇÃO",
		Description: "O que te motiva a começar agora.",
		Details:     "Opcional.",
	},

	// Estilo de Vida
	"dailyRoutine": {
		Title:       "ROTINA DIÁRIA",
		Description: "Como é o seu dia a dia: trabalho, deslocamentos, horários.",
		Details:     "Opcional. Aparece como \"Não informado\" quando em branco.",
	},
	"sleepHours": {
		Title:       "HORAS DE SONO",
		Description: "Média de horas dormidas por noite.",
		Details:     "Opcional. Exemplo: 7",
	},
	"nutritionQuality": {
		Title:       "QUALIDADE DA NUTRIÇÃO",
		Description: "Autoavaliação da sua alimentação.",
		Details:     "Obrigatório.",
	},
	"homeEquipment": {
		Title:       "EQUIPAMENTO EM CASA",
		Description: "Equipamentos de treino disponíveis em casa.",
		Details:     "Opcional. Exemplos: halteres, elásticos, tapete.",
	},

	// Medidas
	"height": {
		Title:       "ALTURA",
		Description: "Sua altura em metros.",
		Details:     "Obrigatório. Exemplo: 1.75 ou 1,75",
	},
	"currentWeight": {
		Title:       "PESO ATUAL",
		Description: "Seu peso atual em quilos.",
		Details:     "Obrigatório. Usado no cálculo do IMC.",
	},
	"desiredWeight": {
		Title:       "PESO DESEJADO",
		Description: "O peso que você deseja atingir, em quilos.",
		Details:     "Obrigatório.",
	},
}

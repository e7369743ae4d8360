package integrations

import "fmt"

// CatalogEntry is one vendor seeded into every tenant.
type CatalogEntry struct {
	Name        string
	Category    Category
	LogoFile    string
	Description string
}

// DefaultCatalog is the list of integrations created by Seed.
var DefaultCatalog = []CatalogEntry{
	{Name: "OpenAI", Category: CategoryLLMProviders, LogoFile: "openai.svg", Description: "GPT and embedding models served through the OpenAI API."},
	{Name: "Anthropic", Category: CategoryLLMProviders, LogoFile: "anthropic.svg", Description: "Claude family of models for chat, analysis and coding."},
	{Name: "Cohere", Category: CategoryLLMProviders, LogoFile: "cohere.svg", Description: "Command, Embed and Rerank models for enterprise search."},
	{Name: "Azure AI Foundry", Category: CategoryLLMProviders, LogoFile: "azure-ai-foundry.svg", Description: "Model catalog and deployment platform on Microsoft Azure."},
	{Name: "Mistral AI", Category: CategoryLLMProviders, LogoFile: "mistral.svg", Description: "Open-weight and hosted language models."},
	{Name: "Databricks", Category: CategoryDataPlatforms, LogoFile: "databricks.svg", Description: "Lakehouse platform with Unity Catalog and model serving."},
	{Name: "Snowflake", Category: CategoryDataPlatforms, LogoFile: "snowflake.svg", Description: "Cloud data warehouse with Cortex AI functions."},
	{Name: "BigQuery", Category: CategoryDataPlatforms, LogoFile: "bigquery.svg", Description: "Serverless data warehouse on Google Cloud."},
	{Name: "Amazon SageMaker", Category: CategoryMLPlatforms, LogoFile: "sagemaker.svg", Description: "Build, train and deploy machine learning models on AWS."},
	{Name: "Vertex AI", Category: CategoryMLPlatforms, LogoFile: "vertex-ai.svg", Description: "Google Cloud platform for ML training and generative AI."},
	{Name: "Hugging Face", Category: CategoryMLPlatforms, LogoFile: "huggingface.svg", Description: "Model hub, datasets and inference endpoints."},
	{Name: "MLflow", Category: CategoryMLPlatforms, LogoFile: "mlflow.svg", Description: "Experiment tracking and model registry."},
	{Name: "Weights & Biases", Category: CategoryMLPlatforms, LogoFile: "wandb.svg", Description: "Experiment tracking, evaluation and prompt tracing."},
	{Name: "Pinecone", Category: CategoryVectorDatabases, LogoFile: "pinecone.svg", Description: "Managed vector database for similarity search."},
	{Name: "Weaviate", Category: CategoryVectorDatabases, LogoFile: "weaviate.svg", Description: "Open-source vector database with hybrid search."},
	{Name: "Qdrant", Category: CategoryVectorDatabases, LogoFile: "qdrant.svg", Description: "Vector similarity search engine."},
	{Name: "Lakera Guard", Category: CategoryAISecurity, LogoFile: "lakera.svg", Description: "Prompt injection and data leakage protection for LLM apps."},
	{Name: "Protect AI", Category: CategoryAISecurity, LogoFile: "protectai.svg", Description: "Model scanning and ML supply chain security."},
	{Name: "HiddenLayer", Category: CategoryAISecurity, LogoFile: "hiddenlayer.svg", Description: "Runtime detection and response for AI models."},
	{Name: "AWS", Category: CategoryCloudProviders, LogoFile: "aws.svg", Description: "Amazon Web Services account inventory of AI services."},
	{Name: "Google Cloud", Category: CategoryCloudProviders, LogoFile: "gcp.svg", Description: "Google Cloud project inventory of AI services."},
	{Name: "Microsoft Azure", Category: CategoryCloudProviders, LogoFile: "azure.svg", Description: "Azure subscription inventory of AI services."},
}

// ValidateCatalog returns one message per incomplete, miscategorised or
// duplicated entry.
func ValidateCatalog(entries []CatalogEntry) []string {
	var problems []string
	seen := make(map[string]bool, len(entries))
	for i, entry := range entries {
		label := entry.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}
		if entry.Name == "" || entry.LogoFile == "" || entry.Description == "" {
			problems = append(problems, label+": name, logo file and description are required")
		}
		if !entry.Category.Valid() {
			problems = append(problems, fmt.Sprintf("%s: invalid category %q", label, entry.Category))
		}
		if entry.Name != "" && seen[entry.Name] {
			problems = append(problems, label+": duplicate entry")
		}
		seen[entry.Name] = true
	}
	return problems
}

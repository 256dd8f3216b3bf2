package correlation

func revisedCategories() []categoryDecl {
	return []categoryDecl{
		{name: "Electronic Lab Notebooks", cells: map[Stage]Cell{
			StagePlan:    x("Experiment planning templates and protocols"),
			StageCollect: xx("Primary capture of experimental observations and data"),
			StageProcess: x("Inline annotation and early data cleaning"),
			StageAnalyse: x("Recording of analysis steps alongside results"),
			StageStore:   x("Structured storage of notebook entries"),
			StageShare:   x("Sharing notebook pages with collaborators"),
		}},
		{name: "Data Repositories", cells: map[Stage]Cell{
			StageCollect:  x("Deposit of collected datasets"),
			StageStore:    xx("Core data storage with versioning"),
			StagePublish:  x("Dataset publication with DOI assignment"),
			StagePreserve: x("Bit-level preservation of deposited data"),
			StageShare:    xx("Primary channel for sharing datasets"),
			StageAccess:   xx("Download and API access to datasets"),
		}},
		{name: "Software Repositories", cells: map[Stage]Cell{
			StageProcess:   x("Versioned processing code"),
			StageAnalyse:   x("Versioned analysis scripts and notebooks"),
			StageStore:     x("Source code storage with version control"),
			StagePublish:   x("Software releases with citable identifiers"),
			StageShare:     x("Sharing code through public repositories"),
			StageAccess:    x("Code retrieval and reuse"),
			StageTransform: x("Conversion and migration tooling"),
		}},
		{name: "Publication Repositories", cells: map[Stage]Cell{
			StageConceptualize: x("Prior literature informing research questions"),
			StagePublish:       xx("Dissemination of articles and preprints"),
			StageShare:         x("Open access distribution of outputs"),
			StageAccess:        x("Full-text access to publications"),
		}},
		{name: "Preservation Archives", cells: map[Stage]Cell{
			StageStore:     x("Archival storage tiers"),
			StagePreserve:  xx("Long-term preservation with format migration"),
			StageAccess:    x("Retrieval of archived material"),
			StageTransform: x("Format normalization for preservation"),
		}},
		{name: "Discovery Services", cells: map[Stage]Cell{
			StageConceptualize: x("Literature, dataset and tool discovery for hypothesis formation"),
			StagePlan:          x("Discovery of existing studies, methods and services"),
			StageShare:         x("Resource discovery and recommendation"),
			StageAccess:        xx("Search interfaces and service catalogues for resource access"),
		}},
		{name: "Services and Tools for Direct Research Tasks", cells: map[Stage]Cell{
			StageConceptualize: x("Concept mapping and visualization tools"),
			StagePlan:          x("Project planning and DMP tools"),
			StageCollect:       x("Data collection instruments"),
			StageProcess:       xx("Data processing and cleaning tools"),
			StageAnalyse:       xx("Statistical and visualization software"),
			StageTransform:     x("Data integration and transformation tools"),
		}},
		{name: "Services and Tools that Enable Workflows and Middleware", cells: map[Stage]Cell{
			StageCollect:   x("Automated collection workflows"),
			StageProcess:   x("Processing pipeline orchestration"),
			StageAnalyse:   x("Analysis workflow coordination"),
			StageStore:     x("Storage workflow automation"),
			StageTransform: x("Transformation workflow orchestration"),
		}},
		{name: "Vocabulary and Semantic Object Services", cells: map[Stage]Cell{
			StagePlan:     x("Terminology standardization for planning"),
			StageCollect:  x("Controlled vocabularies for annotation"),
			StageProcess:  x("Semantic harmonization frameworks"),
			StageStore:    x("Semantic metadata for organization"),
			StagePublish:  x("Vocabulary standards for discoverability"),
			StagePreserve: x("Semantic metadata preservation"),
			StageAccess:   x("Semantic search capabilities"),
		}},
		{name: "Persistent Identifier Services", cells: map[Stage]Cell{
			StageStore:    x("Stable identifiers for storage"),
			StagePublish:  xx("DOI assignment for citation"),
			StagePreserve: x("Long-term identifier persistence"),
			StageShare:    x("Reliable referencing for sharing"),
			StageAccess:   x("PID resolution for access"),
		}},
		{name: "Security and Identification Services (AAI)", cells: map[Stage]Cell{
			StageConceptualize: x("Secure access to planning environments"),
			StagePlan:          x("Authentication for planning platforms"),
			StageCollect:       x("Secure instrument and data access"),
			StageProcess:       x("Processing platform authentication"),
			StageAnalyse:       x("Computational resource security"),
			StageStore:         x("Storage access control"),
			StagePublish:       x("Publication identity management"),
			StagePreserve:      x("Preservation system security"),
			StageShare:         x("Sharing permission management"),
			StageAccess:        x("Resource access authentication"),
			StageTransform:     x("Integration platform security"),
		}},
		{name: "Helpdesk Services", cells: map[Stage]Cell{
			StageConceptualize: x("Conceptualization guidance and support"),
			StagePlan:          x("Planning methodology assistance"),
			StageCollect:       x("Collection troubleshooting support"),
			StageProcess:       x("Processing technical assistance"),
			StageAnalyse:       x("Analysis tool usage support"),
			StageStore:         x("Storage procedure guidance"),
			StagePublish:       x("Publication process assistance"),
			StagePreserve:      x("Preservation planning support"),
			StageShare:         x("Sharing configuration help"),
			StageAccess:        x("Access problem resolution"),
			StageTransform:     x("Integration challenge support"),
		}},
		{name: "Quality Assurance Services", cells: map[Stage]Cell{
			StagePlan:     x("Quality criteria defined in data management plans"),
			StageCollect:  x("Validation of instruments and capture protocols"),
			StageProcess:  x("Automated quality checks on processed data"),
			StageAnalyse:  x("Reproducibility and statistical review"),
			StagePublish:  xx("Curation and review before publication"),
			StagePreserve: x("Fixity checking and integrity audits"),
		}},
		{name: "API Connection Services", cells: map[Stage]Cell{
			StageCollect:   x("Programmatic ingest from instruments and sources"),
			StageProcess:   x("Service-to-service data exchange"),
			StageStore:     x("Repository deposit APIs"),
			StageShare:     x("Machine-actionable sharing endpoints"),
			StageAccess:    xx("Programmatic access to data and metadata"),
			StageTransform: xx("Format conversion and integration endpoints"),
		}},
	}
}

func revisedConcentrations() concentrationTable {
	return concentrationTable{
		StageConceptualize: {
			Primary:   []string{"Discovery Services", "Direct Research Tools"},
			Secondary: []string{"Publication Repositories", "AAI", "Helpdesk"},
		},
		StagePlan: {
			Primary:   []string{"Direct Research Tools", "Vocabulary Services"},
			Secondary: []string{"Discovery Services", "Electronic Lab Notebooks", "Quality Assurance", "AAI", "Helpdesk"},
		},
		StageCollect: {
			Primary:   []string{"Electronic Lab Notebooks", "Direct Research Tools"},
			Secondary: []string{"Data Repositories", "Workflow Services", "API Connection Services", "Quality Assurance", "AAI", "Helpdesk"},
		},
		StageProcess: {
			Primary:   []string{"Direct Research Tools", "Workflow Services"},
			Secondary: []string{"Software Repositories", "Quality Assurance", "Vocabulary Services", "AAI", "Helpdesk"},
		},
		StageAnalyse: {
			Primary:   []string{"Direct Research Tools", "Workflow Services"},
			Secondary: []string{"Software Repositories", "Quality Assurance", "AAI", "Helpdesk"},
		},
		StageStore: {
			Primary:   []string{"Data Repositories", "PID Services"},
			Secondary: []string{"Software Repositories", "Preservation Archives", "Workflow Services", "AAI", "Helpdesk"},
		},
		StagePublish: {
			Primary:   []string{"Publication Repositories", "PID Services", "Quality Assurance"},
			Secondary: []string{"Data Repositories", "Software Repositories", "Vocabulary Services", "AAI", "Helpdesk"},
		},
		StagePreserve: {
			Primary:   []string{"Preservation Archives", "PID Services"},
			Secondary: []string{"Data Repositories", "Quality Assurance", "Vocabulary Services", "AAI", "Helpdesk"},
		},
		StageShare: {
			Primary:   []string{"Data Repositories", "Discovery Services"},
			Secondary: []string{"API Connection Services", "PID Services", "AAI", "Helpdesk"},
		},
		StageAccess: {
			Primary:   []string{"Data Repositories", "Discovery Services", "API Connection Services"},
			Secondary: []string{"Publication Repositories", "PID Services", "Vocabulary Services", "AAI", "Helpdesk"},
		},
		StageTransform: {
			Primary:   []string{"API Connection Services", "Direct Research Tools", "Workflow Services"},
			Secondary: []string{"Preservation Archives", "AAI", "Helpdesk"},
		},
	}
}

// The narrative claims below (stage counts in particular) are written by hand
// and are not checked against the matrix.
func revisedNarrative() Narrative {
	return Narrative{
		CrossCutting: []Note{
			{"AAI Services", "Universal security layer across ALL 11 MaLDReTH stages"},
			{"Helpdesk Services", "Comprehensive user support throughout ALL lifecycle activities"},
			{"Data Repositories", "Core infrastructure for storing, sharing and accessing datasets"},
			{"API Connection Services", "Machine-to-machine glue from collection through transformation"},
		},
		Findings: []Note{
			{"Most Connected Services", "AAI (11 stages), Helpdesk (11 stages), Software Repositories (7 stages), Vocabulary Services (7 stages)"},
			{"Repository Specialization", "Research Object Repositories split into notebooks, data, software, publication and preservation services with distinct stage profiles"},
			{"Strong Correlations", "Data Repositories dominate Store, Share and Access; Preservation Archives dominate Preserve"},
			{"New Categories", "Quality Assurance and API Connection Services cover gaps in the original grouping"},
			{"Security & Support Universal", "Every stage requires authentication (AAI) and user assistance (Helpdesk)"},
		},
		Legend: standardLegend(),
	}
}

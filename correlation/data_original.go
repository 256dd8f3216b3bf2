package correlation

func originalCategories() []categoryDecl {
	return []categoryDecl{
		{name: "Research Object Repositories", cells: map[Stage]Cell{
			StageCollect:  xx("Electronic lab notebooks enable data capture; Data repositories store collected datasets"),
			StageStore:    x("Primary storage infrastructure with versioning"),
			StagePublish:  x("Publication platforms with DOI assignment"),
			StagePreserve: x("Long-term preservation infrastructure"),
			StageShare:    x("Sharing through repository interfaces"),
			StageAccess:   x("Access via download and API mechanisms"),
		}},
		{name: "Discovery Services", cells: map[Stage]Cell{
			StageConceptualize: x("Literature and dataset discovery for hypothesis formation"),
			StagePlan:          x("Discovery of existing studies and methodologies"),
			StageShare:         x("Resource discovery and recommendation"),
			StageAccess:        x("Search interfaces for resource access"),
		}},
		{name: "Services and Tools for Direct Research Tasks", cells: map[Stage]Cell{
			StageConceptualize: x("Concept mapping and visualization tools"),
			StagePlan:          x("Project planning and DMP tools"),
			StageCollect:       x("Data collection instruments and ELNs"),
			StageProcess:       x("Data processing and cleaning tools"),
			StageAnalyse:       x("Statistical and visualization software"),
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
		{name: "Commons Catalogues of All Services and Tools", cells: map[Stage]Cell{
			StageConceptualize: x("Tool and repository discovery"),
			StagePlan:          x("Service selection and planning"),
			StageAccess:        x("Service discovery interfaces"),
		}},
		{name: "Persistent Identifier Services", cells: map[Stage]Cell{
			StageStore:    x("Stable identifiers for storage"),
			StagePublish:  x("DOI assignment for citation"),
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
	}
}

func originalConcentrations() concentrationTable {
	return concentrationTable{
		StageConceptualize: {
			Primary:   []string{"Discovery Services", "Direct Research Tools"},
			Secondary: []string{"Commons Catalogues", "AAI", "Helpdesk"},
		},
		StagePlan: {
			Primary:   []string{"Direct Research Tools", "Vocabulary Services"},
			Secondary: []string{"Discovery Services", "Commons Catalogues", "AAI", "Helpdesk"},
		},
		StageCollect: {
			Primary:   []string{"Direct Research Tools", "Research Object Repositories"},
			Secondary: []string{"Workflow Services", "Vocabulary Services", "AAI", "Helpdesk"},
		},
		StageProcess: {
			Primary:   []string{"Direct Research Tools", "Workflow Services"},
			Secondary: []string{"Vocabulary Services", "AAI", "Helpdesk"},
		},
		StageAnalyse: {
			Primary:   []string{"Direct Research Tools", "Workflow Services"},
			Secondary: []string{"AAI", "Helpdesk"},
		},
		StageStore: {
			Primary:   []string{"Research Object Repositories", "PID Services"},
			Secondary: []string{"Workflow Services", "Vocabulary Services", "AAI", "Helpdesk"},
		},
		StagePublish: {
			Primary:   []string{"Research Object Repositories", "PID Services"},
			Secondary: []string{"Vocabulary Services", "AAI", "Helpdesk"},
		},
		StagePreserve: {
			Primary:   []string{"Research Object Repositories", "PID Services"},
			Secondary: []string{"Vocabulary Services", "AAI", "Helpdesk"},
		},
		StageShare: {
			Primary:   []string{"Research Object Repositories", "Discovery Services"},
			Secondary: []string{"PID Services", "AAI", "Helpdesk"},
		},
		StageAccess: {
			Primary:   []string{"Research Object Repositories", "Discovery Services"},
			Secondary: []string{"Commons Catalogues", "PID Services", "Vocabulary Services", "AAI", "Helpdesk"},
		},
		StageTransform: {
			Primary:   []string{"Direct Research Tools", "Workflow Services"},
			Secondary: []string{"AAI", "Helpdesk"},
		},
	}
}

// The narrative claims below (stage counts in particular) are written by hand
// and are not checked against the matrix.
func originalNarrative() Narrative {
	return Narrative{
		CrossCutting: []Note{
			{"AAI Services", "Universal security layer across ALL 11 MaLDReTH stages"},
			{"Helpdesk Services", "Comprehensive user support throughout ALL lifecycle activities"},
			{"Research Object Repositories", "Core infrastructure for 5 key stages (Store, Preserve, Publish, Share, Access)"},
			{"Direct Research Tools", "Primary enabler for active research phases (Conceptualize, Plan, Collect, Process, Analyse, Transform)"},
		},
		Findings: []Note{
			{"Most Connected Services", "AAI (11 stages), Helpdesk (11 stages), Direct Research Tools (6 stages)"},
			{"Least Connected Services", "Commons Catalogues (3 stages), Discovery Services (4 stages)"},
			{"Repository-Centric Stages", "Store, Preserve, Publish, Share, Access all depend heavily on Research Object Repositories"},
			{"Tool-Intensive Stages", "Conceptualize through Analyse, plus Transform rely on Direct Research Tools"},
			{"Security & Support Universal", "Every stage requires authentication (AAI) and user assistance (Helpdesk)"},
		},
		Legend: standardLegend(),
	}
}

func standardLegend() []LegendEntry {
	return []LegendEntry{
		{Marker: MarkerStandard, Label: "X", Text: "Standard correlation - Service supports this lifecycle stage"},
		{Marker: MarkerStrong, Label: "XX", Text: "Strong correlation - Service is critical for this lifecycle stage"},
		{Marker: MarkerNone, Label: "(empty)", Text: "No direct correlation between service and stage"},
	}
}

// Package controls loads screen documents, declarative lists of controls
// stored as YAML or JSON, and renders them through package elements.
//
//	screens:
//	  ticket-filters:
//	    title: Filter tickets
//	    controls:
//	      - kind: status_dropdown
//	        name: post_status
//	      - kind: select
//	        name: kbs_agent
//	        chosen: true
//	        options:
//	          - {key: "1", label: Ada}
package controls

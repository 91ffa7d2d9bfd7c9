package server

import (
	"encoding/json"
	"fmt"

	"github.com/mwehr/plansheet/pkg/types"
)

// patchFields are the optional columns update_project and add_project accept
// besides name and status.
var patchFields = []string{types.ColDeadline, types.ColAssignee, types.ColNotes}

// strArg returns the string value of an argument and whether the key was
// present with a string value. Absent and present-but-empty are distinct:
// update_project only patches keys the caller actually sent.
func strArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// requireName extracts the mandatory name argument.
func requireName(args map[string]any) (string, error) {
	name, ok := strArg(args, types.ColName)
	if !ok || name == "" {
		return "", fmt.Errorf("%w: name is required", types.ErrInvalidData)
	}
	return name, nil
}

// renderJSON serializes records for the client.
func renderJSON(v any) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing result: %w", err)
	}
	return string(out), nil
}

func (s *Server) listProjects(map[string]any) (string, error) {
	records, err := s.store.ListAll()
	if err != nil {
		return "", err
	}
	if records == nil {
		records = []types.Record{}
	}
	return renderJSON(records)
}

func (s *Server) getProject(args map[string]any) (string, error) {
	name, err := requireName(args)
	if err != nil {
		return "", err
	}
	rec, err := s.store.Get(name)
	if err != nil {
		return "", err
	}
	return renderJSON(rec)
}

func (s *Server) addProject(args map[string]any) (string, error) {
	name, err := requireName(args)
	if err != nil {
		return "", err
	}

	// Every canonical column is written, blank when not provided, so a new
	// row always fills the full width of the default schema.
	rec := types.Record{types.ColName: name}
	status, ok := strArg(args, types.ColStatus)
	if !ok {
		status = types.DefaultStatus
	}
	rec[types.ColStatus] = status
	for _, field := range patchFields {
		v, _ := strArg(args, field)
		rec[field] = v
	}

	if err := s.store.Add(rec); err != nil {
		return "", err
	}
	return fmt.Sprintf("Added project %q", name), nil
}

func (s *Server) updateProject(args map[string]any) (string, error) {
	name, err := requireName(args)
	if err != nil {
		return "", err
	}

	patch := types.Record{}
	if v, ok := strArg(args, types.ColStatus); ok {
		patch[types.ColStatus] = v
	}
	for _, field := range patchFields {
		if v, ok := strArg(args, field); ok {
			patch[field] = v
		}
	}

	if err := s.store.Update(name, patch); err != nil {
		return "", err
	}
	return fmt.Sprintf("Updated project %q", name), nil
}

func (s *Server) deleteProject(args map[string]any) (string, error) {
	name, err := requireName(args)
	if err != nil {
		return "", err
	}
	if err := s.store.Delete(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Deleted project %q", name), nil
}

func (s *Server) searchProjects(args map[string]any) (string, error) {
	filters := map[string]string{}
	if v, ok := strArg(args, types.ColStatus); ok {
		filters[types.ColStatus] = v
	}
	if v, ok := strArg(args, types.ColAssignee); ok {
		filters[types.ColAssignee] = v
	}

	records, err := s.store.Search(filters)
	if err != nil {
		return "", err
	}
	return renderJSON(records)
}

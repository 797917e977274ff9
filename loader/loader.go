// Package loader reads directory snapshots: the fully materialized
// tenants, permission sets, reports, and seed assignments the console
// works over. A snapshot is the only external input of the module.
package loader

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reportinghub/accesshub/types"
)

// Snapshot is a loaded directory image
type Snapshot struct {
	Tenants        []types.Tenant
	PermissionSets []types.PermissionSet
	Reports        []types.ReportRef
	Assignments    []types.Assignment
}

// Tenant looks up a tenant of the snapshot by id
func (s *Snapshot) Tenant(id string) (*types.Tenant, bool) {
	for i := range s.Tenants {
		if s.Tenants[i].ID == id {
			return &s.Tenants[i], true
		}
	}
	return nil, false
}

type snapshotFile struct {
	Tenants        []tenantRecord        `yaml:"tenants"`
	PermissionSets []permissionSetRecord `yaml:"permissionSets"`
	Reports        []reportRecord        `yaml:"reports"`
	Assignments    []assignmentRecord    `yaml:"assignments"`
}

type tenantRecord struct {
	TenantID      string        `yaml:"tenantId"`
	DisplayName   string        `yaml:"displayName"`
	DefaultDomain string        `yaml:"defaultDomain"`
	Users         []userRecord  `yaml:"users"`
	Groups        []groupRecord `yaml:"groups"`
}

type userRecord struct {
	ID                string `yaml:"id"`
	DisplayName       string `yaml:"displayName"`
	Mail              string `yaml:"mail"`
	UserPrincipalName string `yaml:"userPrincipalName"`
	AccountEnabled    bool   `yaml:"accountEnabled"`
}

type groupRecord struct {
	ID              string   `yaml:"id"`
	DisplayName     string   `yaml:"displayName"`
	Description     string   `yaml:"description"`
	SecurityEnabled bool     `yaml:"securityEnabled"`
	MembershipRule  string   `yaml:"membershipRule"`
	Members         []string `yaml:"members"`
}

type permissionSetRecord struct {
	ID           string          `yaml:"id"`
	Name         string          `yaml:"name"`
	Description  string          `yaml:"description"`
	Capabilities map[string]bool `yaml:"capabilities"`
}

type reportRecord struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Path     string   `yaml:"path"`
	Dataset  string   `yaml:"dataset"`
	RLSRoles []string `yaml:"rlsRoles"`
}

type assignmentRecord struct {
	TenantID        string `yaml:"tenantId"`
	Subject         string `yaml:"subject"`
	PermissionSetID string `yaml:"permissionSetId"`
	Scope           string `yaml:"scope"`
	TargetID        string `yaml:"targetId"`
	RLSRole         string `yaml:"rlsRole"`
}

// Load parses a YAML snapshot
func Load(r io.Reader) (*Snapshot, error) {
	var file snapshotFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	snap := &Snapshot{
		Tenants:        make([]types.Tenant, 0, len(file.Tenants)),
		PermissionSets: make([]types.PermissionSet, 0, len(file.PermissionSets)),
		Reports:        make([]types.ReportRef, 0, len(file.Reports)),
		Assignments:    make([]types.Assignment, 0, len(file.Assignments)),
	}

	for _, t := range file.Tenants {
		snap.Tenants = append(snap.Tenants, convertTenant(t))
	}
	for _, ps := range file.PermissionSets {
		snap.PermissionSets = append(snap.PermissionSets, convertPermissionSet(ps))
	}
	for _, rep := range file.Reports {
		snap.Reports = append(snap.Reports, types.ReportRef{
			ID:       rep.ID,
			Name:     rep.Name,
			Path:     rep.Path,
			Dataset:  rep.Dataset,
			RLSRoles: rep.RLSRoles,
		})
	}
	for _, a := range file.Assignments {
		assignment, err := convertAssignment(a)
		if err != nil {
			return nil, err
		}
		snap.Assignments = append(snap.Assignments, assignment)
	}

	return snap, nil
}

// LoadFile parses a YAML snapshot from disk
func LoadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	return Load(f)
}

func convertTenant(t tenantRecord) types.Tenant {
	tenant := types.Tenant{
		ID:            t.TenantID,
		DisplayName:   t.DisplayName,
		DefaultDomain: t.DefaultDomain,
		Users:         make([]types.User, 0, len(t.Users)),
		Groups:        make([]types.Group, 0, len(t.Groups)),
	}

	for _, u := range t.Users {
		tenant.Users = append(tenant.Users, types.User{
			ID:                u.ID,
			DisplayName:       u.DisplayName,
			Mail:              u.Mail,
			UserPrincipalName: u.UserPrincipalName,
			AccountEnabled:    u.AccountEnabled,
		})
	}
	for _, g := range t.Groups {
		group := types.Group{
			ID:              g.ID,
			DisplayName:     g.DisplayName,
			Description:     g.Description,
			SecurityEnabled: g.SecurityEnabled,
			MembershipRule:  g.MembershipRule,
			Members:         make([]types.MemberRef, 0, len(g.Members)),
		}
		for _, m := range g.Members {
			group.Members = append(group.Members, types.MemberRef{ID: m})
		}
		tenant.Groups = append(tenant.Groups, group)
	}

	return tenant
}

func convertPermissionSet(ps permissionSetRecord) types.PermissionSet {
	caps := types.NoCapabilities
	for name, granted := range ps.Capabilities {
		if !granted {
			continue
		}
		c, err := types.ParseCapability(name)
		if err != nil {
			// newer exports may carry capabilities this build does not
			// know; they are ignored, as the console ignores them
			continue
		}
		caps |= c
	}

	return types.PermissionSet{
		ID:           ps.ID,
		Name:         ps.Name,
		Description:  ps.Description,
		Capabilities: caps,
	}
}

func convertAssignment(a assignmentRecord) (types.Assignment, error) {
	sub, err := types.ParseSubject(a.Subject)
	if err != nil {
		return types.Assignment{}, fmt.Errorf("%w: %q", err, a.Subject)
	}

	scope := types.Scope(a.Scope)
	if !scope.Valid() {
		return types.Assignment{}, fmt.Errorf("%w: %q", types.ErrInvalidScope, a.Scope)
	}
	if scope == types.ScopeReport && a.TargetID == "" {
		return types.Assignment{}, fmt.Errorf("%w: subject %s", types.ErrMissingTarget, a.Subject)
	}

	return types.Assignment{
		TenantID:        a.TenantID,
		Subject:         sub,
		PermissionSetID: a.PermissionSetID,
		Scope:           scope,
		TargetID:        a.TargetID,
		RLSRole:         a.RLSRole,
	}, nil
}

package classify

import (
	"strings"

	"github.com/vamsi200/drashta/internal/event"
	"github.com/vamsi200/drashta/internal/journal"
)

// Router dispatches a RawRecord to one of the eight service Classifiers by
// inspecting SYSLOG_IDENTIFIER (falling back to _SYSTEMD_UNIT); an unknown
// identifier routes to the generic System classifier.
type Router struct {
	byIdentifier map[string]Classifier
	byService    map[event.Service]Classifier
	fallback     Classifier
}

// NewRouter builds the fixed, built-in routing table. The taxonomy is
// closed, so this table is not user-configurable.
func NewRouter() *Router {
	r := &Router{
		byIdentifier: make(map[string]Classifier),
		byService:    make(map[event.Service]Classifier),
	}
	classifiers := []struct {
		identifiers []string
		classifier  Classifier
	}{
		{[]string{"sshd"}, sshdClassifier},
		{[]string{"sudo"}, sudoClassifier},
		{[]string{"login", "systemd-logind", "useradd", "userdel", "usermod", "groupadd", "groupdel", "passwd"}, loginClassifier},
		{[]string{"kernel"}, kernelClassifier},
		{[]string{"systemd", "crond", "cron", "anacron"}, configChangeClassifier},
		{[]string{"dpkg", "apt", "rpm", "dnf", "yum", "packagekit"}, pkgManagerClassifier},
		{[]string{"firewalld"}, firewalldClassifier},
		{[]string{"nm-dispatcher", "networkmanager"}, networkManagerClassifier},
	}
	for _, c := range classifiers {
		for _, id := range c.identifiers {
			r.byIdentifier[id] = c.classifier
		}
		r.byService[c.classifier.Service] = c.classifier
	}
	r.fallback = systemClassifier
	r.byService[systemClassifier.Service] = systemClassifier
	return r
}

// Classify implements journal.ClassifyFunc over the full routing table.
func (r *Router) Classify(rec journal.RawRecord) event.Event {
	return r.classifierFor(rec).Classify(rec)
}

// classifierFor resolves rec's identifier to a Classifier, case-insensitively,
// falling back to the generic System classifier for anything unrecognized.
func (r *Router) classifierFor(rec journal.RawRecord) Classifier {
	id := strings.ToLower(rec.Identifier())
	if c, ok := r.byIdentifier[id]; ok {
		return c
	}
	return r.fallback
}

// ClassifierForService returns the Classifier registered for a given
// Service, used by the query engine to build a service-scoped MatchFunc
// without re-running identifier dispatch on every record (the caller
// already knows which topic it is walking).
func (r *Router) ClassifierForService(service event.Service) (Classifier, bool) {
	c, ok := r.byService[service]
	return c, ok
}

// Services returns every Service the Router knows how to route to, in a
// stable order, for building the event_name -> topic table the HTTP layer
// validates against.
func (r *Router) Services() []event.Service {
	return []event.Service{
		event.ServiceSshd,
		event.ServiceSudo,
		event.ServiceLogin,
		event.ServiceKernel,
		event.ServiceConfigChange,
		event.ServicePkgManager,
		event.ServiceFirewalld,
		event.ServiceNetworkManager,
		event.ServiceSystem,
	}
}
